package habit

type HabitType string

const (
	HabitTypeBinary  HabitType = "binary"
	HabitTypeNumeric HabitType = "numeric"
	HabitTypeVice    HabitType = "vice"
)

var AllTypes = []HabitType{
	HabitTypeBinary,
	HabitTypeNumeric,
	HabitTypeVice,
}

func (t HabitType) IsValid() bool {
	for _, v := range AllTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsBinary reports whether days are charted as done/not-done counts.
func (t HabitType) IsBinary() bool {
	return t == HabitTypeBinary || t == HabitTypeVice
}
