package item

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/argguild/epgpbot/internal/domain"
)

// Gear point formula constants
const (
	gpBase          = 17.213
	gpLevelDivisor  = 26.0
	gpQualityOffset = 4
)

var (
	twoHanders = map[int]bool{
		domain.WeaponAxe2: true, domain.WeaponMace2: true, domain.WeaponSword2: true,
		domain.WeaponStaff: true, domain.WeaponExotic2: true, domain.WeaponSpear: true,
	}
	oneHanders = map[int]bool{
		domain.WeaponAxe: true, domain.WeaponMace: true, domain.WeaponSword: true,
		domain.WeaponExotic: true, domain.WeaponFist: true, domain.WeaponDagger: true,
	}
	rangedWeapons = map[int]bool{
		domain.WeaponBow: true, domain.WeaponGun: true, domain.WeaponThrown: true,
		domain.WeaponCrossbow: true, domain.WeaponWand: true,
	}
	relics = map[int]bool{
		domain.ArmorLibram: true, domain.ArmorIdol: true, domain.ArmorTotem: true,
	}

	armorSlotModifiers = map[string]float64{
		"Head":     1,
		"Chest":    1,
		"Legs":     1,
		"Shoulder": 0.75,
		"Hands":    0.75,
		"Waist":    0.75,
		"Feet":     0.75,
		"Trinket":  0.75,
		"Wrist":    0.5,
		"Neck":     0.5,
		"Back":     0.5,
		"Finger":   0.5,
	}
)

// SlotModifier returns the multiplier for the item's slot as worn by role.
// Items that are neither weapons nor armor are worth nothing.
func SlotModifier(item domain.Item, role domain.Role) float64 {
	switch item.Class {
	case domain.ItemClassWeapon:
		switch {
		case twoHanders[item.SubclassID]:
			if role == domain.RoleRanged {
				return 1
			}
			return 2
		case oneHanders[item.SubclassID]:
			if role == domain.RoleTank || role == domain.RoleRanged {
				return 0.5
			}
			return 1
		case rangedWeapons[item.SubclassID]:
			if role == domain.RoleRanged {
				return 1.5
			}
			return 0.5
		}
	case domain.ItemClassArmor:
		switch {
		case item.SubclassID == domain.ArmorShield && role == domain.RoleTank:
			return 1.5
		case relics[item.SubclassID]:
			return 0.5
		default:
			return armorSlotModifiers[item.InventoryTypeName]
		}
	}
	return 0
}

// GearPoints returns the GP cost of item for a character playing role:
// round(17.213 * 2^(ilvl/26 + (quality-4)) * slot_modifier), halves away from zero.
func GearPoints(item domain.Item, role domain.Role) int64 {
	mod := SlotModifier(item, role)
	if mod == 0 {
		return 0
	}
	exp := float64(item.ItemLevel)/gpLevelDivisor + float64(item.Quality.Value()-gpQualityOffset)
	raw := gpBase * math.Pow(2, exp) * mod
	return decimal.NewFromFloat(raw).Round(0).IntPart()
}

// SidegradeCost returns the share of a full cost charged for a sidegrade win, halves away from zero
func SidegradeCost(full int64) int64 {
	return decimal.NewFromInt(full).
		Mul(decimal.NewFromInt(domain.SidegradeCostPercent)).
		DivRound(decimal.NewFromInt(100), 0).
		IntPart()
}
