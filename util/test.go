package util

import (
	"fmt"
	"github.com/hauke96/sigolo/v2"
	"reflect"
	"strings"
	"testing"
)

// AssertEqual fails the test when both values are not deeply equal. Multi-line strings are printed side by side with
// the differing lines marked.
func AssertEqual(t *testing.T, expected any, actual any) {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		return
	}

	expectedString, expectedIsString := expected.(string)
	actualString, actualIsString := actual.(string)
	if expectedIsString && actualIsString {
		assertEqualStrings(t, expectedString, actualString)
		return
	}

	sigolo.Errorb(1, "Expect to be equal.\nExpected: %+v\n----------\nActual  : %+v\n", expected, actual)
	t.Fail()
}

func assertEqualStrings(t *testing.T, expected string, actual string) {
	t.Helper()
	expectedLines := strings.Split(strings.ReplaceAll(expected, "\n", "\\n\n"), "\n")
	actualLines := strings.Split(strings.ReplaceAll(actual, "\n", "\\n\n"), "\n")

	lineCount := max(len(expectedLines), len(actualLines))

	sigolo.Errorb(2, "Expect to be equal.\n|   | %-50s | %-50s |", "Expected", "Actual")
	fmt.Printf("|%s|\n", strings.Repeat("-", 109))
	for i := 0; i < lineCount; i++ {
		expectedLine := lineAt(expectedLines, i)
		actualLine := lineAt(actualLines, i)

		changeMark := " "
		if expectedLine != actualLine || i >= len(expectedLines) || i >= len(actualLines) {
			changeMark = "*"
		}

		fmt.Printf("| %s | %-50q | %-50q |\n", changeMark, expectedLine, actualLine)
	}

	t.Fail()
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}

func AssertNil(t *testing.T, value any) {
	t.Helper()
	if !isNil(value) {
		sigolo.Errorb(1, "Expect to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func AssertNotNil(t *testing.T, value any) {
	t.Helper()
	if isNil(value) {
		sigolo.Errorb(1, "Expect NOT to be 'nil' but was: %#v", value)
		t.Fail()
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return reflect.ValueOf(value).IsNil()
	}
	return false
}

func AssertError(t *testing.T, expectedMessage string, err error) {
	t.Helper()
	if err == nil {
		sigolo.Errorb(1, "Expected error with message: %s\nActual error: nil", expectedMessage)
		t.Fail()
		return
	}
	if expectedMessage != err.Error() {
		sigolo.Errorb(1, "Expected message: %s\nActual error message: %s", expectedMessage, err.Error())
		t.Fail()
	}
}

func AssertTrue(t *testing.T, b bool) {
	t.Helper()
	if !b {
		sigolo.Errorb(1, "Expected true but got false")
		t.Fail()
	}
}

func AssertFalse(t *testing.T, b bool) {
	t.Helper()
	if b {
		sigolo.Errorb(1, "Expected false but got true")
		t.Fail()
	}
}

func AssertContains(t *testing.T, expectedSubstring string, content string) {
	t.Helper()
	if !strings.Contains(content, expectedSubstring) {
		sigolo.Errorb(1, "Expected to contain\nSubstring: %q\nContent: %q", expectedSubstring, content)
		t.Fail()
	}
}
