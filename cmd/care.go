package cmd

// PetSource is what the control loop needs from the pet simulation.
type PetSource interface {
	EmotionalState() string
	Stats() []Stat
	Perform(a Action) Outcome
}

const (
	statMin = 0
	statMax = 100

	lowThreshold  = 30
	highThreshold = 70

	// points per second
	hungerDecay    = 0.05
	happinessDecay = 0.03
	energyDecay    = 0.02
)

// Care tracks hunger, happiness and energy on a 0-100 scale. All three decay
// linearly with time; the decay is applied incrementally from the last
// update so polling frequency does not change the result.
type Care struct {
	clock   Clock
	updated Ticks

	hunger    float64
	happiness float64
	energy    float64
}

var _ PetSource = (*Care)(nil)

func NewCare(clock Clock) *Care {
	return &Care{
		clock:     clock,
		updated:   clock.Ticks(),
		hunger:    50,
		happiness: 50,
		energy:    50,
	}
}

func clampStat(v float64) float64 {
	if v < statMin {
		return statMin
	}
	if v > statMax {
		return statMax
	}
	return v
}

func (c *Care) update() {
	now := c.clock.Ticks()
	diff := TicksDiff(now, c.updated)
	if diff <= 0 {
		return
	}
	sec := float64(diff) / 1000
	c.hunger = clampStat(c.hunger - sec*hungerDecay)
	c.happiness = clampStat(c.happiness - sec*happinessDecay)
	c.energy = clampStat(c.energy - sec*energyDecay)
	c.updated = now
}

func (c *Care) Perform(a Action) Outcome {
	c.update()
	out := OutcomeGood
	switch a {
	case ActionFeed:
		// no overfeeding
		if c.hunger >= 90 {
			out = OutcomeBad
			break
		}
		c.hunger += 20
		c.happiness += 5
	case ActionPlay:
		if c.energy <= 20 {
			out = OutcomeBad
			break
		}
		c.energy -= 10
		c.happiness += 15
		c.hunger -= 5
	case ActionPet:
		c.happiness += 10
	default:
		out = OutcomeBad
	}
	c.hunger = clampStat(c.hunger)
	c.happiness = clampStat(c.happiness)
	c.energy = clampStat(c.energy)

	logger.Info("pet action", "action", a, "outcome", out)
	return out
}

// EmotionalState reports the most pressing need first, then glee when every
// stat is high.
func (c *Care) EmotionalState() string {
	c.update()
	switch {
	case c.hunger < lowThreshold:
		return "sad"
	case c.energy < lowThreshold:
		return "tired"
	case c.happiness < lowThreshold:
		return "annoyed"
	case c.hunger > highThreshold && c.happiness > highThreshold && c.energy > highThreshold:
		return "glee"
	}
	return Neutral
}

func (c *Care) Stats() []Stat {
	c.update()
	return []Stat{
		{Name: "Hunger", Value: c.hunger},
		{Name: "Happiness", Value: c.happiness},
		{Name: "Energy", Value: c.energy},
	}
}
