// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package validater

import (
	"fmt"
	"log"
	"reflect"
	"regexp"
	"strings"
)

const tagKeyName = "valid"

// https://cloud.google.com/compute/docs/labeling-resources#requirements
var labelKeyRegexp = regexp.MustCompile(`^[\p{Ll}\p{Lo}][\p{Ll}\p{Lo}\p{N}_-]{0,62}$`)

// validater interface
type validater interface {
	validate(interface{}) (bool, error)
}

// defaultValidater is always valid
type defaultValidater struct {
}

func (v defaultValidater) validate(val interface{}) (bool, error) {
	return true, nil
}

// isNotZeroValueValidater do not accept zero value
type isNotZeroValueValidater struct {
}

func (v isNotZeroValueValidater) validate(value interface{}) (bool, error) {
	kind := reflect.TypeOf(value).Kind()
	switch kind {
	case reflect.String, reflect.Int64, reflect.Float64, reflect.Slice, reflect.Map:
		if reflect.ValueOf(value).IsZero() {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
		if (kind == reflect.Slice || kind == reflect.Map) && reflect.ValueOf(value).Len() == 0 {
			return false, fmt.Errorf("Should NOT be a zero value %s", kind)
		}
	default:
		return false, fmt.Errorf("Unmanaged kind by 'isNotZeroValueValidater' %s", kind)
	}
	return true, nil
}

// isOneOfValidater accepts only the strings listed after the tag prefix
type isOneOfValidater struct {
	acceptedValues []string
}

func (v isOneOfValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be string")
	}
	for _, acceptedValue := range v.acceptedValues {
		if s == acceptedValue {
			return true, nil
		}
	}
	return false, fmt.Errorf("Should be one of %v, got '%s'", v.acceptedValues, s)
}

// isLabelKeyValidater accepts only valid Compute Engine label keys
type isLabelKeyValidater struct {
}

func (v isLabelKeyValidater) validate(value interface{}) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("Should be string")
	}
	if !labelKeyRegexp.MatchString(s) {
		return false, fmt.Errorf("Should be a label key: lowercase letter first, then up to 62 lowercase letters, digits, '_' or '-', got '%s'", s)
	}
	return true, nil
}

func getValidater(tagValue string) validater {
	tagValueParts := strings.Split(tagValue, ",")
	tagPrefix := tagValueParts[0]
	switch tagPrefix {
	case "isNotZeroValue":
		return isNotZeroValueValidater{}
	case "isOneOf":
		return isOneOfValidater{acceptedValues: tagValueParts[1:]}
	case "isLabelKey":
		return isLabelKeyValidater{}
	}
	return defaultValidater{}
}

// getValidationErrors recursively loop through a struct to find validation errors
func getValidationErrors(structure interface{}, pedigree string) []error {
	errs := []error{}
	if structure == nil {
		return errs
	}
	value := reflect.ValueOf(structure)
	if value.Kind() == reflect.Interface || value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return errs
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return []error{fmt.Errorf("type %s is not a struct", value.Kind())}
	}

	for i := 0; i < value.NumField(); i++ {
		valueField := value.Field(i)
		typeField := value.Type().Field(i)
		if typeField.PkgPath != "" || typeField.Tag.Get(tagKeyName) == "-" {
			continue
		}
		if valueField.Kind() == reflect.Interface {
			valueField = valueField.Elem()
		}
		// time.Time is a struct with only unexported fields, tag it `valid:"-"`
		if valueField.Kind() == reflect.Struct || (valueField.Kind() == reflect.Ptr && !valueField.IsNil() && valueField.Elem().Kind() == reflect.Struct) {
			childErrs := getValidationErrors(valueField.Interface(), fmt.Sprintf("%s/%s", pedigree, typeField.Name))
			errs = append(errs, childErrs...)
			continue
		}
		if !valueField.IsValid() || (valueField.Kind() == reflect.Ptr && valueField.IsNil()) {
			continue
		}
		ok, err := getValidater(typeField.Tag.Get(tagKeyName)).validate(valueField.Interface())
		if !ok {
			errs = append(errs, fmt.Errorf("Validater error %s '%s' %v", pedigree, typeField.Name, err))
		}
	}
	return errs
}

// ValidateStruct validates the fields of a struct
func ValidateStruct(structure interface{}, pedigree string) (err error) {
	errors := getValidationErrors(structure, pedigree)
	if len(errors) > 0 {
		for _, err := range errors {
			log.Println(err)
		}
		return fmt.Errorf("Error, settings validation failed, %d invalid field(s)", len(errors))
	}
	return nil
}
