package component

import (
	"fmt"
	"reflect"
	"slices"
)

const (
	missingRequiredFieldTemplateConstant = "%s is required"
	invalidFieldTypeTemplateConstant     = "%s must be of type %s"
	invalidEnumValueTemplateConstant     = "%s must be one of %v"
	belowMinimumTemplateConstant         = "%s must be at least %d"
	aboveMaximumTemplateConstant         = "%s must be at most %d"
)

// FieldType enumerates the primitive types a parameter may declare.
type FieldType string

// Supported field types.
const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeArray   FieldType = "array"
	FieldTypeBoolean FieldType = "boolean"
)

// Parameters holds loosely typed component inputs keyed by field name. A nil value counts as absent.
type Parameters map[string]any

// FieldDefinition constrains a single parameter.
type FieldDefinition struct {
	Type        FieldType
	Enum        []string
	Minimum     *int
	Maximum     *int
	Default     any
	Description string
}

// Schema declares the required fields and per-field constraints accepted by a component.
type Schema struct {
	Required []string
	Fields   map[string]FieldDefinition
}

// Bound returns a pointer to the provided limit for use in FieldDefinition ranges.
func Bound(limit int) *int {
	return &limit
}

var fieldTypeValidators = map[FieldType]func(any) bool{
	FieldTypeString:  isString,
	FieldTypeInteger: isInteger,
	FieldTypeArray:   isArray,
	FieldTypeBoolean: isBoolean,
}

// Check validates parameters and describes the first violated constraint.
func (schema Schema) Check(parameters Parameters) error {
	for _, requiredField := range schema.Required {
		if !present(parameters, requiredField) {
			return fmt.Errorf(missingRequiredFieldTemplateConstant, requiredField)
		}
	}

	fieldNames := make([]string, 0, len(schema.Fields))
	for fieldName := range schema.Fields {
		fieldNames = append(fieldNames, fieldName)
	}
	slices.Sort(fieldNames)

	for _, fieldName := range fieldNames {
		if !present(parameters, fieldName) {
			continue
		}
		if fieldError := schema.Fields[fieldName].check(fieldName, parameters[fieldName]); fieldError != nil {
			return fieldError
		}
	}

	return nil
}

// Validate reports whether the parameters satisfy the schema.
func (schema Schema) Validate(parameters Parameters) bool {
	return schema.Check(parameters) == nil
}

func (definition FieldDefinition) check(fieldName string, value any) error {
	if validator, known := fieldTypeValidators[definition.Type]; known && !validator(value) {
		return fmt.Errorf(invalidFieldTypeTemplateConstant, fieldName, definition.Type)
	}

	if len(definition.Enum) > 0 {
		stringValue, isStringValue := value.(string)
		if !isStringValue || !slices.Contains(definition.Enum, stringValue) {
			return fmt.Errorf(invalidEnumValueTemplateConstant, fieldName, definition.Enum)
		}
	}

	integerValue, isIntegerValue := asInteger(value)
	if !isIntegerValue {
		return nil
	}
	if definition.Minimum != nil && integerValue < int64(*definition.Minimum) {
		return fmt.Errorf(belowMinimumTemplateConstant, fieldName, *definition.Minimum)
	}
	if definition.Maximum != nil && integerValue > int64(*definition.Maximum) {
		return fmt.Errorf(aboveMaximumTemplateConstant, fieldName, *definition.Maximum)
	}

	return nil
}

func present(parameters Parameters, fieldName string) bool {
	value, exists := parameters[fieldName]
	return exists && value != nil
}

func isString(value any) bool {
	_, matches := value.(string)
	return matches
}

func isInteger(value any) bool {
	_, matches := asInteger(value)
	return matches
}

func isBoolean(value any) bool {
	_, matches := value.(bool)
	return matches
}

func isArray(value any) bool {
	kind := reflect.ValueOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func asInteger(value any) (int64, bool) {
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return reflected.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(reflected.Uint()), true
	default:
		return 0, false
	}
}
