package annotation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// namePattern constrains block-type, mode and port names the same way
	// the architecture compiler does.
	namePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

func init() {
	validate = validator.New()
}

// ValidateRecord checks a single annotation record for structural sanity
// before any resolution against the block-type tree is attempted. It covers
// the rules struct tags cannot: path arity per declared side, at least one
// declared side, name well-formedness, duplicate port mappings, and pin
// span sanity.
func ValidateRecord(r *Record) error {
	if r == nil {
		return errors.New("annotation record cannot be nil")
	}

	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}

	if !r.IsOperating() && !r.IsPhysical() {
		return errors.New("record declares neither an operating nor a physical block type")
	}

	if r.IsOperating() {
		if err := validatePath("operating", r.OperatingTypes, r.OperatingModes); err != nil {
			return err
		}
	}
	if r.IsPhysical() {
		if err := validatePath("physical", r.PhysicalTypes, r.PhysicalModes); err != nil {
			return err
		}
	}

	if r.PhysicalModeName != "" && !namePattern.MatchString(r.PhysicalModeName) {
		return fmt.Errorf("physical mode name %q contains invalid characters", r.PhysicalModeName)
	}

	seen := make(map[string]bool, len(r.PortMappings))
	for _, pm := range r.PortMappings {
		if seen[pm.OperatingPort] {
			return fmt.Errorf("duplicate port mapping for operating port %q", pm.OperatingPort)
		}
		seen[pm.OperatingPort] = true

		if !namePattern.MatchString(pm.OperatingPort) {
			return fmt.Errorf("operating port name %q contains invalid characters", pm.OperatingPort)
		}
		if !namePattern.MatchString(pm.PhysicalPort) {
			return fmt.Errorf("physical port name %q contains invalid characters", pm.PhysicalPort)
		}
		if pm.Explicit() && pm.Hi <= pm.Lo {
			return fmt.Errorf("port mapping %q: pin span %d..%d is empty", pm.OperatingPort, pm.Lo, pm.Hi)
		}
	}

	return nil
}

// ValidateRecords validates every record and reports the index of the
// first invalid one.
func ValidateRecords(records []*Record) error {
	for i, r := range records {
		if err := ValidateRecord(r); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// validatePath checks one side's path shape: N type names require exactly
// N-1 mode names, and every name must be well-formed.
func validatePath(side string, typeNames, modeNames []string) error {
	if len(typeNames) != len(modeNames)+1 {
		return fmt.Errorf("%s path: %d type names require %d mode names, got %d",
			side, len(typeNames), len(typeNames)-1, len(modeNames))
	}
	for _, n := range typeNames {
		if !namePattern.MatchString(n) {
			return fmt.Errorf("%s path: type name %q contains invalid characters", side, n)
		}
	}
	for _, n := range modeNames {
		if !namePattern.MatchString(n) {
			return fmt.Errorf("%s path: mode name %q contains invalid characters", side, n)
		}
	}
	return nil
}

// formatValidationError converts validator.ValidationErrors into a readable
// single-line message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q validation", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(msgs, "; "))
}
