package systems

import (
	"delve-server/internal/domain"
	"delve-server/pkg/logger"
	"fmt"

	"github.com/sirupsen/logrus"
)

// AttackOutcome - результат одной атаки.
// Система боя НЕ переключает глобальные режимы: о смерти игрока
// сообщается флагом, решение принимает движок.
type AttackOutcome struct {
	Msg        string
	Damage     int
	TargetDied bool
	PlayerDied bool
}

// ApplyAttack наносит удар по цели и, при летальном исходе, запускает
// переход смерти.
func ApplyAttack(attacker, target *domain.Entity) AttackOutcome {
	combatLogger := logger.Log.WithFields(logrus.Fields{
		"component":     "combat_system",
		"attacker_id":   attacker.ID,
		"attacker_name": attacker.Name,
		"target_id":     target.ID,
		"target_name":   target.Name,
	})

	// --- Проверка граничных условий ---

	if target.Fighter == nil {
		combatLogger.Warn("Attack failed: target has no FighterComponent")
		return AttackOutcome{Msg: fmt.Sprintf("%s атакует %s, но это бесполезно.", attacker.Name, target.Name)}
	}
	if !target.IsAlive() {
		combatLogger.Info("Attack ineffective: target is already dead")
		return AttackOutcome{Msg: fmt.Sprintf("%s пинает труп.", attacker.Name)}
	}

	// --- Расчёт урона ---

	// Урон = сила атакующего минус защита цели, не меньше нуля.
	power := 0
	if attacker.Fighter != nil {
		power = attacker.Fighter.Power
	}

	damage := power - target.Fighter.Defense
	if damage < 0 {
		damage = 0
	}

	targetName := target.Name
	hpBefore := target.Fighter.HP()
	hpAfter, lethal := target.Fighter.Damage(damage)

	// Смерть срабатывает, только пока у цели есть AI-ссылка
	outcome := AttackOutcome{Damage: damage}
	if lethal && target.AI != nil {
		outcome.TargetDied = true
		outcome.PlayerDied = ApplyDeath(target)
	}

	combatLogger.WithFields(logrus.Fields{
		"power":        power,
		"defense":      target.Fighter.Defense,
		"final_damage": damage,
		"hp_before":    hpBefore,
		"hp_after":     hpAfter,
		"target_died":  outcome.TargetDied,
	}).Info("Attack resolved")

	// --- Формируем сообщение для клиента ---

	if damage > 0 {
		outcome.Msg = fmt.Sprintf("%s наносит %d урона по %s.", attacker.Name, damage, targetName)
	} else {
		outcome.Msg = fmt.Sprintf("%s атакует %s, но не пробивает защиту.", attacker.Name, targetName)
	}

	if outcome.TargetDied {
		outcome.Msg += fmt.Sprintf(" %s погибает.", targetName)
	}

	return outcome
}
