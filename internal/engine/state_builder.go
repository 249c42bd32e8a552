package engine

import (
	"sort"

	"delve-server/internal/core/types"
	"delve-server/internal/domain"
	"delve-server/pkg/api"
	"delve-server/pkg/logger"
)

// BuildStateFor создает персональный слепок мира для observer.
// Клиенту уходят только исследованные тайлы и только видимые сущности:
// то, чего наблюдатель не знает, по сети не передается вовсе.
func (s *GameService) BuildStateFor(observer *domain.Entity) *api.ServerResponse {
	m := s.Game.Map

	// 1. Карта: исследованные тайлы. Видимые - с яркой палитрой,
	// запомненные - с тусклой.
	var mapDTO []api.TileView
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.GetIndex(x, y)
			if !m.Explored[idx] {
				continue
			}

			tile := m.TileAt(x, y)
			visible := m.Visible[idx]

			glyph := tile.Dark
			if visible {
				glyph = tile.Light
			}

			mapDTO = append(mapDTO, api.TileView{
				X:          x,
				Y:          y,
				Symbol:     string(glyph.Char()),
				FG:         glyph.HexFG(),
				BG:         glyph.HexBG(),
				IsWalkable: tile.Walkable,
				IsVisible:  visible,
			})
		}
	}

	// 2. Сущности: только в поле зрения, в порядке отрисовки
	// (трупы внизу, актеры поверх)
	var viewEntities []api.EntityView
	for _, e := range m.Entities {
		idx := m.GetIndex(e.Pos.X, e.Pos.Y)
		if !m.Visible[idx] {
			continue
		}
		viewEntities = append(viewEntities, toEntityView(e, observer))
	}
	sort.SliceStable(viewEntities, func(i, j int) bool {
		a := s.Game.Map.GetEntity(viewEntities[i].ID)
		b := s.Game.Map.GetEntity(viewEntities[j].ID)
		return renderOrder(a) < renderOrder(b)
	})

	// 3. Полоска здоровья героя
	var bar *api.BarView
	if observer.Fighter != nil {
		b, err := api.NewBar(observer.Fighter.HP(), observer.Fighter.MaxHP, 20)
		if err != nil {
			logger.Log.WithField("component", "state_builder").
				WithError(err).Error("Health bar skipped")
		} else {
			bar = b
		}
	}

	// Копия логов, чтобы не было гонки данных
	logsCopy := make([]api.LogEntry, len(s.Logs))
	copy(logsCopy, s.Logs)

	return &api.ServerResponse{
		Type:       "UPDATE",
		Mode:       s.Game.Mode.String(),
		Floor:      s.Game.Floor,
		MyEntityID: observer.ID,
		Grid:       &api.GridMeta{Width: m.Width, Height: m.Height},
		Map:        mapDTO,
		Entities:   viewEntities,
		HealthBar:  bar,
		Logs:       logsCopy,
	}
}

func renderOrder(e *domain.Entity) domain.RenderOrder {
	if e == nil || e.Render == nil {
		return domain.RenderOrderCorpse
	}
	return e.Render.Order
}

// toEntityView конвертирует доменную сущность в DTO
func toEntityView(target *domain.Entity, observer *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   target.ID,
		Type: target.Type,
		Name: target.Name,
	}
	view.Pos.X = target.Pos.X
	view.Pos.Y = target.Pos.Y

	glyph := types.MakeGlyph('?', 0xFFFFFF, 0x000000)
	if target.Render != nil {
		glyph = target.Render.Glyph
	}
	view.Render.Symbol = string(glyph.Char())
	view.Render.FG = glyph.HexFG()
	view.Render.BG = glyph.HexBG()

	if target.Fighter != nil {
		view.Stats = &api.StatsView{
			HP:      target.Fighter.HP(),
			MaxHP:   target.Fighter.MaxHP,
			Defense: target.Fighter.Defense,
			Power:   target.Fighter.Power,
			IsDead:  !target.IsAlive(),
		}
	}

	return view
}
