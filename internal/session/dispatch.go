package session

import (
	"fmt"
	"log/slog"

	"github.com/MrMalina/Hero-Wars/internal/model"
	"github.com/MrMalina/Hero-Wars/internal/world"
)

// DispatchEvent направляет игровое событие герою игрока. ev.Player
// заполняется автоматически; события игроков без героя поглощаются.
func (s *Session) DispatchEvent(index int32, name string, ev *model.GameEvent) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}
	if ev == nil {
		ev = &model.GameEvent{}
	}
	if ev.Player == nil {
		ev.Player = st.Player
	}
	if st.Hero == nil {
		return nil
	}

	st.Hero.HandleEvent(name, ev)
	if name == model.EventDeath {
		s.onDeath(st)
	}
	return nil
}

// onDeath снимает эффекты погибшего и отбирает временные предметы.
func (s *Session) onDeath(st *State) {
	s.effects.ClearPlayer(st.Player)

	dropped := st.Hero.DropExpiring()
	if len(dropped) > 0 {
		s.tell(st.Player, "You lost %d item(s) on death.", len(dropped))
	}
}

// AwardExp начисляет герою опыт за объектив из таблицы наград.
// Неизвестные и нулевые награды молча пропускаются.
func (s *Session) AwardExp(index int32, reason string) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}
	if st.Hero == nil {
		return nil
	}

	amount, ok := s.cfg.ExpValues.Value(reason)
	if !ok || amount == 0 {
		return nil
	}
	if err := st.Hero.AddExp(amount); err != nil {
		return fmt.Errorf("awarding %d exp to player %d: %w", amount, index, err)
	}
	s.tell(st.Player, "+%d exp (%s).", amount, reason)
	return nil
}

// AwardGold начисляет игроку золото за объектив из таблицы наград.
func (s *Session) AwardGold(index int32, reason string) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}

	amount, ok := s.cfg.GoldValues.Value(reason)
	if !ok || amount == 0 {
		return nil
	}
	st.Record.Gold += amount
	if s.cfg.ShowGoldMessages {
		s.tell(st.Player, "+%d gold (%s).", amount, reason)
	}
	return nil
}

// AwardTeamExp начисляет опыт всем подключённым игрокам команды.
// Командные награды приходят и мёртвым.
func (s *Session) AwardTeamExp(team int32, reason string) {
	for _, p := range s.world.Select(world.Filter{Team: team}) {
		if err := s.AwardExp(p.Index(), reason); err != nil {
			slog.Warn("team exp award", "index", p.Index(), "error", err)
		}
	}
}

// UpgradeSkill тратит очки навыков игрока на прокачку скилла.
func (s *Session) UpgradeSkill(index int32, skillID string) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}
	if st.Hero == nil {
		return fmt.Errorf("player %d has no hero: %w", index, model.ErrNotFound)
	}

	if err := st.Hero.Upgrade(skillID); err != nil {
		return err
	}
	skill, _ := st.Hero.FindSkill(skillID)
	s.tell(st.Player, "%s upgraded to level %d.", skill.Name(), skill.Level())
	return nil
}

// ResetSkills обнуляет скиллы героя игрока, возвращая очки.
func (s *Session) ResetSkills(index int32) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}
	if st.Hero == nil {
		return fmt.Errorf("player %d has no hero: %w", index, model.ErrNotFound)
	}

	st.Hero.ResetSkills()
	s.tell(st.Player, "Skills reset: %d points available.", st.Hero.SkillPoints())
	return nil
}

// BuyItem покупает предмет за золото игрока.
func (s *Session) BuyItem(index int32, itemID string) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}
	if st.Hero == nil {
		return fmt.Errorf("player %d has no hero: %w", index, model.ErrNotFound)
	}

	spec, ok := s.reg.ItemByID(itemID)
	if !ok || spec.Disabled {
		return fmt.Errorf("item %q: %w", itemID, model.ErrNotFound)
	}
	if !spec.Allows(st.Player.SteamID()) {
		return fmt.Errorf("%w: item %q is restricted", model.ErrInvalidArgument, itemID)
	}
	if st.Hero.Level() < spec.RequiredLevel {
		return fmt.Errorf("%w: item %q requires hero level %d",
			model.ErrInvalidArgument, itemID, spec.RequiredLevel)
	}
	if st.Record.Gold < spec.Cost {
		return fmt.Errorf("%w: item %q costs %d gold, you have %d",
			model.ErrInvalidArgument, itemID, spec.Cost, st.Record.Gold)
	}

	if _, err := st.Hero.AddItem(spec); err != nil {
		return err
	}
	st.Record.Gold -= spec.Cost
	s.tell(st.Player, "Bought %s for %d gold.", spec.Name, spec.Cost)
	return nil
}

// SellItem продаёт предмет за часть его стоимости.
func (s *Session) SellItem(index int32, itemID string) error {
	st, err := s.State(index)
	if err != nil {
		return err
	}
	if st.Hero == nil {
		return fmt.Errorf("player %d has no hero: %w", index, model.ErrNotFound)
	}

	var item *model.Item
	for _, it := range st.Hero.Items() {
		if it.ID() == itemID {
			item = it
			break
		}
	}
	if item == nil {
		return fmt.Errorf("item %q: %w", itemID, model.ErrNotFound)
	}

	if err := st.Hero.RemoveItem(item); err != nil {
		return err
	}
	st.Record.Gold += item.SellValue()
	s.tell(st.Player, "Sold %s for %d gold.", item.Name(), item.SellValue())
	return nil
}
