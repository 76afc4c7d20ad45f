package board

import "sandtris/internal/core"

// Parameters reports the board's configuration and live state for HUDs.
func (b *Board) Parameters() core.ParameterSnapshot {
	size := b.grid.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
				core.Int64Param("seed", "Seed", b.seed),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.StringParam("state", "State", b.State().String()),
				core.Int64Param("ticks", "Ticks", int64(b.stats.Ticks)),
				core.Int64Param("spawns", "Spawns", int64(b.stats.Spawns)),
				core.Int64Param("dismantles", "Landed", int64(b.stats.Dismantles)),
				core.IntParam("blocks", "Blocks", b.grid.Count()),
			},
		},
	}

	piece := core.ParameterGroup{
		Name:   "Piece",
		Params: []core.Parameter{core.BoolParam("active", "Active", b.active)},
	}
	if b.active {
		piece.Params = append(piece.Params,
			core.StringParam("kind", "Kind", b.piece.Kind.String()),
			core.IntParam("orientation", "Rotation", b.piece.Orientation),
			core.IntParam("row", "Row", b.piece.Row),
			core.IntParam("col", "Col", b.piece.Col),
		)
	}
	groups = append(groups, piece)
	return core.ParameterSnapshot{Groups: groups}
}
