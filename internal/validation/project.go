package validation

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/project-board/internal/projects/domain"
)

// Bounds are the limits applied to project form input.
type Bounds struct {
	TitleMinLength int
	PeopleMin      int
	PeopleMax      int
}

// DefaultBounds matches the project input form.
var DefaultBounds = Bounds{
	TitleMinLength: 5,
	PeopleMin:      2,
	PeopleMax:      10,
}

// ProjectInput checks a new project's fields. The returned error wraps
// domain.ErrInvalidInput and names every failing field.
func ProjectInput(req domain.CreateProjectRequest, b Bounds) error {
	var failed []string

	if !Validate(Rule{Value: req.Title, Required: true, MinLength: Int(b.TitleMinLength)}) {
		failed = append(failed, "title")
	}
	if !Validate(Rule{Value: req.Description, Required: true, MinLength: Int(b.TitleMinLength)}) {
		failed = append(failed, "description")
	}
	if !Validate(Rule{Value: req.People, Required: true, Min: Int(b.PeopleMin), Max: Int(b.PeopleMax)}) {
		failed = append(failed, "people")
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(failed, ", "))
	}
	return nil
}
