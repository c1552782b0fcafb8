package dex

// SpecialClass buckets the species the generator gates behind inclusion
// flags.
type SpecialClass int

const (
	ClassNone SpecialClass = iota
	ClassLegendary
	ClassSubLegendary
	ClassMythical
	ClassUltraBeast
	ClassParadox
)

func (c SpecialClass) String() string {
	switch c {
	case ClassLegendary:
		return "legendary"
	case ClassSubLegendary:
		return "sub-legendary"
	case ClassMythical:
		return "mythical"
	case ClassUltraBeast:
		return "ultra-beast"
	case ClassParadox:
		return "paradox"
	default:
		return "none"
	}
}

// subLegendaryIDs are the "legendary but usable" species the games treat
// separately from box legendaries (birds, beasts, regis, guardians, ...).
var subLegendaryIDs = idSet(
	144, 145, 146, // articuno, zapdos, moltres
	243, 244, 245, // raikou, entei, suicune
	377, 378, 379, // regirock, regice, registeel
	380, 381, // latias, latios
	480, 481, 482, // uxie, mesprit, azelf
	485, 486, 488, // heatran, regigigas, cresselia
	638, 639, 640, // cobalion, terrakion, virizion
	641, 642, 645, // tornadus, thundurus, landorus
	772, 773, // type-null, silvally
	785, 786, 787, 788, // tapus
	894, 895, 896, 897, 905, // regieleki, regidrago, glastrier, spectrier, enamorus
	1001, 1002, 1003, 1004, // treasures of ruin
	1014, 1015, 1016, // loyal three
)

// ultraBeastIDs per the generation 7 dex.
var ultraBeastIDs = idSet(793, 794, 795, 796, 797, 798, 799, 803, 804, 805, 806)

// paradoxIDs per the generation 9 dex.
var paradoxIDs = idSet(
	984, 985, 986, 987, 988, 989, // ancient
	990, 991, 992, 993, 994, 995, // future
	1005, 1006, // roaring moon, iron valiant
	1009, 1010, // walking wake, iron leaves
	1020, 1021, 1022, 1023, // gouging fire .. iron crown
)

func idSet(ids ...int) map[int]struct{} {
	s := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Classify assigns the special class for a species. The legendary and
// mythical flags come from species data; the remaining classes are id
// tables since the API does not flag them.
func Classify(id int, isLegendary, isMythical bool) SpecialClass {
	if _, ok := paradoxIDs[id]; ok {
		return ClassParadox
	}
	if _, ok := ultraBeastIDs[id]; ok {
		return ClassUltraBeast
	}
	if _, ok := subLegendaryIDs[id]; ok {
		return ClassSubLegendary
	}
	if isMythical {
		return ClassMythical
	}
	if isLegendary {
		return ClassLegendary
	}
	return ClassNone
}
