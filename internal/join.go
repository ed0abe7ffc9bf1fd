package internal

import (
	"fmt"
	"strings"
)

const Separator = ", "

// Joiner renders elements in the order they are added, separated by
// Separator. The zero value is ready to use.
type Joiner struct {
	builder strings.Builder
	count   int
}

func (j *Joiner) Add(element any) {
	if j.count > 0 {
		j.builder.WriteString(Separator)
	}
	fmt.Fprint(&j.builder, element)
	j.count++
}

func (j *Joiner) String() string {
	return j.builder.String()
}
