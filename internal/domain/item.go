package domain

// ItemClass is the top-level item category from the game's item database
type ItemClass int

const (
	ItemClassConsumable    ItemClass = 0
	ItemClassContainer     ItemClass = 1
	ItemClassWeapon        ItemClass = 2
	ItemClassArmor         ItemClass = 4
	ItemClassReagent       ItemClass = 5
	ItemClassProjectile    ItemClass = 6
	ItemClassTradeGoods    ItemClass = 7
	ItemClassRecipe        ItemClass = 9
	ItemClassQuiver        ItemClass = 11
	ItemClassQuest         ItemClass = 12
	ItemClassKey           ItemClass = 13
	ItemClassMiscellaneous ItemClass = 15
)

// Weapon subclass ids
const (
	WeaponAxe      = 0
	WeaponAxe2     = 1
	WeaponBow      = 2
	WeaponGun      = 3
	WeaponMace     = 4
	WeaponMace2    = 5
	WeaponPolearm  = 6
	WeaponSword    = 7
	WeaponSword2   = 8
	WeaponStaff    = 10
	WeaponExotic   = 11
	WeaponExotic2  = 12
	WeaponFist     = 13
	WeaponMisc     = 14
	WeaponDagger   = 15
	WeaponThrown   = 16
	WeaponSpear    = 17
	WeaponCrossbow = 18
	WeaponWand     = 19
	WeaponFishing  = 20
)

// Armor subclass ids
const (
	ArmorCloth   = 1
	ArmorLeather = 2
	ArmorMail    = 3
	ArmorPlate   = 4
	ArmorShield  = 6
	ArmorLibram  = 7
	ArmorIdol    = 8
	ArmorTotem   = 9
)

// Quality is the item rarity as named by the item database
type Quality string

const (
	QualityPoor      Quality = "Poor"
	QualityCommon    Quality = "Common"
	QualityUncommon  Quality = "Uncommon"
	QualityRare      Quality = "Rare"
	QualityEpic      Quality = "Epic"
	QualityLegendary Quality = "Legendary"
)

// Value returns the quality weight used by the gear point formula
func (q Quality) Value() int {
	switch q {
	case QualityLegendary:
		return 5
	case QualityEpic:
		return 4
	case QualityRare:
		return 3
	case QualityUncommon:
		return 2
	default:
		return 0
	}
}

// Item is an entry of the item catalog
type Item struct {
	ID                int64     `json:"id" validate:"required,gt=0"`
	Name              string    `json:"name" validate:"required,max=200"`
	ItemLevel         int       `json:"item_level" validate:"gte=0"`
	RequiredLevel     int       `json:"required_level" validate:"gte=0"`
	IconURL           string    `json:"icon_url,omitempty"`
	Class             ItemClass `json:"item_class"`
	SubclassID        int       `json:"item_subclass_id" validate:"gte=0"`
	Quality           Quality   `json:"quality"`
	InventoryType     string    `json:"inventory_type,omitempty"`
	InventoryTypeName string    `json:"inventory_type_name,omitempty"`
}
