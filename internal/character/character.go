// Package character holds the player's stats and progression.
package character

// Config sets starting stats and per-level growth.
type Config struct {
	StartHP      int     `json:"start_hp"`
	StartMana    int     `json:"start_mana"`
	StartAttack  int     `json:"start_attack"`
	StartDefense int     `json:"start_defense"`
	StartXPNext  int     `json:"start_xp_next"`
	XPGrowth     float64 `json:"xp_growth"`

	HPPerLevel      int `json:"hp_per_level"`
	ManaPerLevel    int `json:"mana_per_level"`
	AttackPerLevel  int `json:"attack_per_level"`
	DefensePerLevel int `json:"defense_per_level"`
}

// DefaultConfig returns the standard progression.
func DefaultConfig() Config {
	return Config{
		StartHP:         100,
		StartMana:       50,
		StartAttack:     10,
		StartDefense:    5,
		StartXPNext:     50,
		XPGrowth:        1.5,
		HPPerLevel:      15,
		ManaPerLevel:    10,
		AttackPerLevel:  2,
		DefensePerLevel: 1,
	}
}

// Player is the adventurer's mutable stat block.
type Player struct {
	Level  int
	XP     int
	XPNext int

	HP, MaxHP     int
	Mana, MaxMana int
	Attack        int
	Defense       int
	Gold          int

	// Defending halves the next incoming hit, then clears.
	Defending bool

	config Config
}

// New creates a level 1 player.
func New(config Config) *Player {
	return &Player{
		Level:   1,
		XPNext:  max(config.StartXPNext, 1),
		HP:      config.StartHP,
		MaxHP:   config.StartHP,
		Mana:    config.StartMana,
		MaxMana: config.StartMana,
		Attack:  config.StartAttack,
		Defense: config.StartDefense,
		config:  config,
	}
}

// IsAlive reports whether the player has health left.
func (p *Player) IsAlive() bool {
	return p.HP > 0
}

// TakeDamage lowers health, never below zero, and returns the damage taken.
func (p *Player) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > p.HP {
		amount = p.HP
	}
	p.HP -= amount
	return amount
}

// Heal restores up to amount health and returns how much was restored.
func (p *Player) Heal(amount int) int {
	if amount <= 0 || p.HP <= 0 {
		return 0
	}
	amount = min(amount, p.MaxHP-p.HP)
	p.HP += amount
	return amount
}

// SpendMana pays cost if enough mana is available.
func (p *Player) SpendMana(cost int) bool {
	if cost < 0 || p.Mana < cost {
		return false
	}
	p.Mana -= cost
	return true
}

// RestoreAll refills health and mana.
func (p *Player) RestoreAll() {
	p.HP = p.MaxHP
	p.Mana = p.MaxMana
}

// AddGold adds gold to the purse.
func (p *Player) AddGold(amount int) {
	if amount > 0 {
		p.Gold += amount
	}
}

// GainXP adds experience and resolves every level-up it pays for. It returns
// the number of levels gained.
func (p *Player) GainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	p.XP += amount
	gained := 0
	for p.XP >= p.XPNext {
		p.XP -= p.XPNext
		p.levelUp()
		gained++
	}
	return gained
}

func (p *Player) levelUp() {
	p.Level++
	p.XPNext = max(int(float64(p.XPNext)*p.config.XPGrowth), 1)
	p.MaxHP += p.config.HPPerLevel
	p.MaxMana += p.config.ManaPerLevel
	p.Attack += p.config.AttackPerLevel
	p.Defense += p.config.DefensePerLevel
	p.RestoreAll()
}
