/*
Package yaml provides methods to parse attribute declarations, also known as
metadata, from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/lordrook/J48/attribute"
	yaml "gopkg.in/yaml.v2"
)

/*
ReadAttributes takes a slice of bytes with an attribute declaration in YAML
and returns the attribute set parsed from it, with its target marked, or an
error.

The YAML is expected to be an object with an attributes property holding an
object with one property per attribute, in column order. Its value is either
the string 'continuous', the string 'discrete', or a list with the valid
values of a discrete attribute. An optional target property names the
attribute to predict; when missing the last declared attribute is the target.
The target must be discrete.
*/
func ReadAttributes(md []byte) (attribute.Set, error) {
	metadata := struct {
		Attributes yaml.MapSlice
		Target     string
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return attribute.Set{}, fmt.Errorf("parsing yml attributes: %v", err)
	}
	if len(metadata.Attributes) == 0 {
		return attribute.Set{}, fmt.Errorf("metadata has no attribute information")
	}
	targetName := metadata.Target
	if targetName == "" {
		targetName = fmt.Sprintf("%v", metadata.Attributes[len(metadata.Attributes)-1].Key)
	}
	var attrs []attribute.Attribute
	var target *attribute.DiscreteAttribute
	for _, item := range metadata.Attributes {
		name := fmt.Sprintf("%v", item.Key)
		var a attribute.Attribute
		switch values := item.Value.(type) {
		case string:
			switch values {
			case "continuous":
				a = attribute.NewContinuousAttribute(name)
			case "discrete":
				a = attribute.NewDiscreteAttribute(name)
			default:
				return attribute.Set{}, fmt.Errorf("attribute %s: unknown kind %q", name, values)
			}
		case []interface{}:
			stringVs := make([]string, 0, len(values))
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			a = attribute.NewDiscreteAttribute(name, stringVs...)
		default:
			return attribute.Set{}, fmt.Errorf("attribute %s: invalid declaration of type %T", name, item.Value)
		}
		if name == targetName {
			da, ok := a.(*attribute.DiscreteAttribute)
			if !ok {
				return attribute.Set{}, fmt.Errorf("target attribute %s must be discrete", name)
			}
			target = da
		}
		attrs = append(attrs, a)
	}
	if target == nil {
		return attribute.Set{}, fmt.Errorf("target attribute %s is not declared", targetName)
	}
	target.MarkAsTarget()
	return attribute.NewSet(attrs...), nil
}

/*
ReadAttributesFromFile takes a filepath string, reads its contents and uses
ReadAttributes to parse it.
*/
func ReadAttributesFromFile(filepath string) (attribute.Set, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return attribute.Set{}, fmt.Errorf("reading attributes yml file %s: %v", filepath, err)
	}
	attrs, err := ReadAttributes(md)
	if err != nil {
		err = fmt.Errorf("parsing attributes yml file %s: %v", filepath, err)
	}
	return attrs, err
}
