package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"
)

func (t *testContext) theResponseStatusShouldBe(expected int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expected {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expected, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field %q: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expected string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field %q expected %q, got %q", field, expected, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field %q not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, fragment string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	value := t.response.headers.Get(header)
	if !strings.Contains(value, fragment) {
		return fmt.Errorf("header %q is %q, expected it to contain %q", header, value, fragment)
	}
	return nil
}

func (t *testContext) theDatabaseShouldContainRows(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDatabaseShouldContainRowsMatching(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not registered", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d rows in %q with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

// getFieldValue walks a dot-separated path through nested JSON objects and
// arrays, with numeric segments indexing into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object

	for _, segment := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(segment); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[segment]
	}

	return field
}
