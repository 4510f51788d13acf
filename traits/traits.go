// Package traits defines the physical capabilities a bird can show at a given life stage.
package traits

// Trait is a bitset of visual capabilities.
type Trait uint32

const (
	Renderable   Trait = 1 << iota // Has a bird body to draw (anything past the egg)
	Feathers                       // True feathers, not just down
	Hackles                        // Neck hackle feathers
	Sickles                        // Curved sickle tail feathers
	Spurs                          // Leg spurs
	FullPlumage                    // Complete adult plumage

	// Sex
	Male
	Female
)

// Has checks if a trait set contains a trait.
func (t Trait) Has(other Trait) bool {
	return t&other != 0
}

// Add adds a trait to the set.
func (t Trait) Add(other Trait) Trait {
	return t | other
}

// Remove removes a trait from the set.
func (t Trait) Remove(other Trait) Trait {
	return t &^ other
}

// SexLinked are capabilities only roosters display prominently.
var SexLinked = Sickles | Spurs

// ForSex returns the trait set with sex-linked capabilities dropped for hens
// and the matching sex bit set.
func ForSex(t Trait, isMale bool) Trait {
	if isMale {
		return t.Remove(Female).Add(Male)
	}
	return t.Remove(SexLinked | Male).Add(Female)
}

// TraitNames returns human-readable names for traits.
func TraitNames(t Trait) []string {
	var names []string
	if t.Has(Feathers) {
		names = append(names, "Feathered")
	} else if t.Has(Renderable) {
		names = append(names, "Downy")
	}
	if t.Has(Hackles) {
		names = append(names, "Hackle feathers")
	}
	if t.Has(Sickles) {
		names = append(names, "Sickle tail feathers")
	}
	if t.Has(Spurs) {
		names = append(names, "Leg spurs")
	}
	if t.Has(FullPlumage) {
		names = append(names, "Full plumage")
	}
	return names
}
