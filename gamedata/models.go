package gamedata

// Equipment is one normalized equipment record. Distinct tech-tier upgrades
// of the same item are distinct records with their own IDs.
type Equipment struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Type         int            `json:"type"`
	TypeName     string         `json:"type_name"`
	Rarity       int            `json:"rarity"`
	Nationality  int            `json:"nationality"`
	Tech         int            `json:"tech"`
	Damage       []float64      `json:"damage"`
	Reload       []float64      `json:"reload"`
	ArmorMods    []float64      `json:"armor_modifiers"`
	AmmoType     int            `json:"ammo_type"`
	WeaponIDs    []int          `json:"weapon_ids"`
	EquipParams  map[string]any `json:"equip_parameters"`
	PropertyRate []float64      `json:"property_rate"`
	Value2       int            `json:"value_2"`
	Value3       int            `json:"value_3"`
	Description  string         `json:"description"`
	Speciality   string         `json:"speciality"`
	PartMain     []int          `json:"part_main"`
	PartSub      []int          `json:"part_sub"`
}

// Ship is one normalized ship record. Each limit-break or retrofit state is
// its own record; collapsing them by display name is a reporting concern.
type Ship struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	EnglishName string `json:"english_name"`
	Type        int    `json:"type"`
	TypeName    string `json:"type_name"`
	Nationality int    `json:"nationality"`
	Rarity      int    `json:"rarity"`
	Star        int    `json:"star"`
	ArmorType   int    `json:"armor_type"`

	// Base stats, positional over the 12-element attrs vector.
	HP        int `json:"hp"`
	Firepower int `json:"firepower"`
	Torpedo   int `json:"torpedo"`
	AntiAir   int `json:"antiair"`
	Aviation  int `json:"aviation"`
	Reload    int `json:"reload"`
	Armor     int `json:"armor"`
	Hit       int `json:"hit"`
	Evasion   int `json:"evasion"`
	Speed     int `json:"speed"`
	Luck      int `json:"luck"`
	AntiSub   int `json:"antisub"`

	// Growth rates, same shape as the base vector.
	HPGrowth        int `json:"hp_growth"`
	FirepowerGrowth int `json:"firepower_growth"`
	TorpedoGrowth   int `json:"torpedo_growth"`
	AntiAirGrowth   int `json:"antiair_growth"`
	AviationGrowth  int `json:"aviation_growth"`
	ReloadGrowth    int `json:"reload_growth"`
	ArmorGrowth     int `json:"armor_growth"`
	HitGrowth       int `json:"hit_growth"`
	EvasionGrowth   int `json:"evasion_growth"`
	SpeedGrowth     int `json:"speed_growth"`
	LuckGrowth      int `json:"luck_growth"`
	AntiSubGrowth   int `json:"antisub_growth"`

	EquipProficiency []float64 `json:"equipment_proficiency"`
	BaseList         []int     `json:"base_list"`
	PreloadCount     []int     `json:"preload_count"`
}

// Weapon is one weapon/bullet record. Name comes from a separate name table
// and may be blank.
type Weapon struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Damage     int    `json:"damage"`
	ReloadMax  int    `json:"reload_max"`
	BulletID   int    `json:"bullet_id"`
	BarrageID  int    `json:"barrage_id"`
	SpawnBound string `json:"spawn_bound"`
	FireFX     string `json:"fire_fx"`
	Type       int    `json:"type"`
	Range      int    `json:"range"`
	Angle      int    `json:"angle"`
	MinRange   int    `json:"min_range"`
	AimType    int    `json:"aim_type"`
}
