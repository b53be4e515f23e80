package progress

// AchievementID is the stable key an achievement is stored under.
type AchievementID string

const (
	FirstClear  AchievementID = "first_clear"
	FirstGhost  AchievementID = "first_ghost"
	ComboTen    AchievementID = "combo_10"
	ComboTwenty AchievementID = "combo_20"
	ThreeStars  AchievementID = "three_stars"
	Flawless    AchievementID = "flawless"
	PowerHungry AchievementID = "power_hungry"
	GhostHunter AchievementID = "ghost_hunter"
)

// Achievement is static display data for an unlockable.
type Achievement struct {
	ID          AchievementID
	Title       string
	Description string
	Icon        string
}

// Catalog lists every achievement in display order.
var Catalog = []Achievement{
	{FirstClear, "First Steps", "Clear your first level", "🏁"},
	{FirstGhost, "Ghostbuster", "Eat a ghost while invincible", "👻"},
	{ComboTen, "On a Roll", "Reach a x10 combo", "🔥"},
	{ComboTwenty, "Legendary", "Reach a x20 combo", "⚡"},
	{ThreeStars, "Perfectionist", "Earn three stars on a level", "⭐"},
	{Flawless, "Untouchable", "Clear a level without losing a life", "🛡"},
	{PowerHungry, "Power Hungry", "Use three power-ups in one level", "🍄"},
	{GhostHunter, "Ghost Hunter", "Eat three ghosts in one level", "🎯"},
}

// Lookup returns the catalog entry for id.
func Lookup(id AchievementID) (Achievement, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// Earned returns the achievements a level result qualifies for, in catalog
// order. Callers filter out ones already unlocked.
func Earned(r LevelResult) []AchievementID {
	var out []AchievementID
	out = append(out, FirstClear)
	if r.GhostsEaten > 0 {
		out = append(out, FirstGhost)
	}
	if r.MaxCombo >= 10 {
		out = append(out, ComboTen)
	}
	if r.MaxCombo >= 20 {
		out = append(out, ComboTwenty)
	}
	if r.Stars >= 3 {
		out = append(out, ThreeStars)
	}
	if r.LivesLost == 0 {
		out = append(out, Flawless)
	}
	if r.PowerUps >= 3 {
		out = append(out, PowerHungry)
	}
	if r.GhostsEaten >= 3 {
		out = append(out, GhostHunter)
	}
	return out
}
