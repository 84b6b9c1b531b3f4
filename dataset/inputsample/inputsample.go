/*
Package inputsample provides an implementation of attribute.Sample whose
values are read from an io.Reader.
*/
package inputsample

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lordrook/J48/attribute"
)

/*
ValueRequester represents a way to ask
for attribute values and reject the given values.
*/
type ValueRequester interface {
	RequestValueFor(attribute.Attribute) error
	RejectValueFor(attribute.Attribute, string) error
}

type readSample struct {
	obtained       map[string]*string
	undefinedValue string
	scanner        *bufio.Scanner
	requester      ValueRequester
	attributes     attribute.Set
}

/*
New takes an io.Reader, an attribute set, a ValueRequester and an
undefinedValue coding string and returns a Sample.

The returned Sample ValueFor method reads attribute values first
requesting them with the given ValueRequester and then reading
them from the reader, one value per line. A line holding the
undefinedValue string is read as an undefined value.

Lines are read until one holds a value accepted by the attribute's
Valid method: a decimal number for continuous attributes, or one of
the available values for discrete attributes that declare them.
Every line not accepted is rejected with the ValueRequester's
RejectValueFor method.

Each attribute is requested at most once; later calls to ValueFor
return the value obtained the first time.
*/
func New(r io.Reader, attrs attribute.Set, requester ValueRequester, undefinedValue string) attribute.Sample {
	return &readSample{make(map[string]*string), undefinedValue, bufio.NewScanner(r), requester, attrs}
}

func (rs *readSample) ValueFor(_ context.Context, a attribute.Attribute) (string, bool, error) {
	if v, ok := rs.obtained[a.Name()]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	declared, ok := rs.attributes.Get(a.Name())
	if !ok {
		return "", false, fmt.Errorf("have no information about attribute %s, do not know how to read its value", a.Name())
	}
	if err := rs.requester.RequestValueFor(declared); err != nil {
		return "", false, err
	}
	for rs.scanner.Scan() {
		line := strings.TrimSpace(rs.scanner.Text())
		if line == rs.undefinedValue {
			rs.obtained[a.Name()] = nil
			return "", false, nil
		}
		if declared.Valid(line) == nil {
			rs.obtained[a.Name()] = &line
			return line, true, nil
		}
		if err := rs.requester.RejectValueFor(declared, line); err != nil {
			return "", false, err
		}
	}
	if err := rs.scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, fmt.Errorf("EOF when requesting value for %s", a.Name())
}
