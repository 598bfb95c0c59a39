package model

// Names of the built-in scalar types. Built-ins are always registered and
// their names are reserved: a declaration shadowing one is reported as an
// error, while lookups keep resolving to the declared entry.
const (
	TypeNameID       = "ID"
	TypeNameString   = "String"
	TypeNameInt      = "Int"
	TypeNameFloat    = "Float"
	TypeNameBoolean  = "Boolean"
	TypeNameDateTime = "DateTime"
	TypeNameJSON     = "JSON"
)

var builtinDescriptions = map[string]string{
	TypeNameID:       "An opaque identifier value.",
	TypeNameString:   "A UTF-8 character sequence.",
	TypeNameInt:      "A signed integer.",
	TypeNameFloat:    "A double-precision floating point number.",
	TypeNameBoolean:  "true or false.",
	TypeNameDateTime: "A point in time in RFC 3339 format.",
	TypeNameJSON:     "An arbitrary JSON value.",
}

// builtinOrder fixes the registration order of built-ins.
var builtinOrder = []string{
	TypeNameID,
	TypeNameString,
	TypeNameInt,
	TypeNameFloat,
	TypeNameBoolean,
	TypeNameDateTime,
	TypeNameJSON,
}

// IsBuiltinName reports whether name is reserved by a built-in type.
func IsBuiltinName(name string) bool {
	_, ok := builtinDescriptions[name]
	return ok
}

func builtinTypes() []Type {
	types := make([]Type, 0, len(builtinOrder))
	for _, name := range builtinOrder {
		types = append(types, &ScalarType{
			name:        name,
			description: builtinDescriptions[name],
			builtin:     true,
		})
	}
	return types
}
