package loader

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// minFields is id, name, handle.
const minFields = 3

// Record is one parsed row of the data file.
//
// The validate tags describe a clean row; they are checked by Check and
// never cause a row to be dropped.
type Record struct {
	// Line is the 1-based line the row started on (0 when not read from a file).
	Line int

	// ID is the user id.
	ID int `validate:"gte=0"`

	// Name is the display name; may be empty.
	Name string

	// Handle is the lookup key; Check flags empty or whitespace handles.
	Handle string `validate:"required,handle"`

	// Neighbors lists connection targets in file order.
	Neighbors []int `validate:"dive,gte=0"`
}

// recordValidate is the validator instance for records.
// Initialized in init() with custom validators.
var recordValidate *validator.Validate

func init() {
	recordValidate = validator.New()

	// Handles are typed at a whitespace-delimited prompt.
	_ = recordValidate.RegisterValidation("handle", validateHandle)
}

// validateHandle rejects handles containing any whitespace rune.
func validateHandle(fl validator.FieldLevel) bool {
	return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
}

// ParseRecord converts raw row fields into a Record.
//
// Layout: id, name, handle, then zero or more neighbor ids. Every field is
// trimmed of surrounding whitespace; empty neighbor fields (a trailing
// delimiter) are ignored. Negative ids and any handle, empty included,
// are accepted.
//
// Errors (both mean "skip this row"):
//   - ErrTooFewFields: fewer than three fields.
//   - ErrBadID: id or a neighbor id is not an integer.
func ParseRecord(fields []string) (Record, error) {
	if len(fields) < minFields {
		return Record{}, fmt.Errorf("%w: got %d, want at least %d", ErrTooFewFields, len(fields), minFields)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: user id %q", ErrBadID, fields[0])
	}

	rec := Record{
		ID:        id,
		Name:      strings.TrimSpace(fields[1]),
		Handle:    strings.TrimSpace(fields[2]),
		Neighbors: make([]int, 0, len(fields)-minFields),
	}
	for _, raw := range fields[minFields:] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Record{}, fmt.Errorf("%w: neighbor id %q", ErrBadID, raw)
		}
		rec.Neighbors = append(rec.Neighbors, n)
	}

	return rec, nil
}

// Check reports ErrSuspectRecord when rec fails its validate tags: a
// negative id or neighbor, or a handle that is empty or contains
// whitespace and so cannot be typed at the menu prompt.
func (rec Record) Check() error {
	if err := recordValidate.Struct(rec); err != nil {
		return fmt.Errorf("%w: %s", ErrSuspectRecord, formatValidationError(err))
	}

	return nil
}

// formatValidationError flattens validator errors into "field tag" pairs.
func formatValidationError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
