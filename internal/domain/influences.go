package domain

import "fmt"

// Influences holds the interpretive texts for a reading.
type Influences struct {
	Phases     map[string]string     `json:"phases"`
	Retrograde map[Body]string       `json:"retrograde"`
	Direct     map[Body]string       `json:"direct"`
	Aspects    map[AspectType]string `json:"aspects"`
}

func (in Influences) Phase(name string) string {
	if s, ok := in.Phases[name]; ok {
		return s
	}
	return fmt.Sprintf("The Moon is in its %s phase.", name)
}

func (in Influences) Motion(b Body, retrograde bool) string {
	table, verb := in.Direct, "moving direct"
	if retrograde {
		table, verb = in.Retrograde, "retrograde"
	}
	if s, ok := table[b]; ok {
		return s
	}
	return fmt.Sprintf("%s is %s.", b.Title(), verb)
}

func (in Influences) Aspect(t AspectType) string {
	if s, ok := in.Aspects[t]; ok {
		return s
	}
	return fmt.Sprintf("A %s links these bodies.", t)
}
