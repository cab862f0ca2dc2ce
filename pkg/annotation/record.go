package annotation

// PortMapping is one explicit operating-port to physical-port
// correspondence inside a pairing record. Lo and Hi select a half-open pin
// span on the physical port; a negative Lo means "span the operating
// port's full width".
type PortMapping struct {
	OperatingPort string `yaml:"operating_port" validate:"required,max=64"`
	PhysicalPort  string `yaml:"physical_port" validate:"required,max=64"`
	Lo            int    `yaml:"lo"`
	Hi            int    `yaml:"hi"`
}

// Explicit reports whether the mapping carries an explicit pin span.
func (pm PortMapping) Explicit() bool {
	return pm.Lo >= 0
}

// Record is one user-authored annotation against the block-type tree,
// already parsed from whatever external format the architecture flow uses.
// A record declares an operating side, a physical side, or both:
//   - a record with a PhysicalModeName declares which mode of the addressed
//     block type physically exists in silicon;
//   - a record with both sides pairs an operating block type with its
//     circuit-accurate physical counterpart, port by port.
type Record struct {
	// Path to the operating block type: parent type names plus the type's
	// own name, and the mode taken at each descent.
	OperatingTypes []string `yaml:"operating_types" validate:"omitempty,dive,required,max=64"`
	OperatingModes []string `yaml:"operating_modes" validate:"omitempty,dive,required,max=64"`

	// Path to the physical block type, same shape as the operating path.
	PhysicalTypes []string `yaml:"physical_types" validate:"omitempty,dive,required,max=64"`
	PhysicalModes []string `yaml:"physical_modes" validate:"omitempty,dive,required,max=64"`

	// Name of the mode that is physical at the addressed block type.
	PhysicalModeName string `yaml:"physical_mode_name" validate:"omitempty,max=64"`

	// Explicit port correspondences for a pairing record. Operating ports
	// absent from this list inherit their own name and full width.
	PortMappings []PortMapping `yaml:"port_mappings" validate:"omitempty,dive"`
}

// IsOperating reports whether the record declares an operating side.
func (r *Record) IsOperating() bool {
	return len(r.OperatingTypes) > 0
}

// IsPhysical reports whether the record declares a physical side.
func (r *Record) IsPhysical() bool {
	return len(r.PhysicalTypes) > 0
}

// DeclaresPhysicalMode reports whether the record is a physical-mode
// declaration.
func (r *Record) DeclaresPhysicalMode() bool {
	return r.PhysicalModeName != ""
}

// ModeTarget returns the path the physical-mode declaration applies to:
// the operating side when one is declared, otherwise the physical side.
// The second return is false when the record declares neither side.
func (r *Record) ModeTarget() (typeNames, modeNames []string, ok bool) {
	if r.IsOperating() {
		return r.OperatingTypes, r.OperatingModes, true
	}
	if r.IsPhysical() {
		return r.PhysicalTypes, r.PhysicalModes, true
	}
	return nil, nil, false
}

// MappingFor returns the explicit port mapping for the given operating
// port name, or false when the port inherits the default correspondence.
func (r *Record) MappingFor(operatingPort string) (PortMapping, bool) {
	for _, pm := range r.PortMappings {
		if pm.OperatingPort == operatingPort {
			return pm, true
		}
	}
	return PortMapping{}, false
}
