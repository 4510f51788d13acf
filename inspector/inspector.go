// Package inspector renders ECS components as text using their inspect struct tags.
package inspector

import (
	"fmt"
	"io"
	"reflect"
)

// Inspector writes component dumps to a writer.
type Inspector struct {
	w io.Writer
}

// NewInspector creates an inspector writing to w.
func NewInspector(w io.Writer) *Inspector {
	return &Inspector{w: w}
}

// Write renders a titled section per component.
func (ins *Inspector) Write(title string, components ...any) error {
	if _, err := fmt.Fprintf(ins.w, "== %s ==\n", title); err != nil {
		return err
	}
	for _, c := range components {
		if err := ins.drawSectionHeader(typeName(c)); err != nil {
			return err
		}
		for _, field := range ExtractFields(c) {
			if err := WriteField(ins.w, field); err != nil {
				return err
			}
		}
	}
	return nil
}

func (ins *Inspector) drawSectionHeader(title string) error {
	_, err := fmt.Fprintf(ins.w, "-- %s\n", title)
	return err
}

func typeName(c any) string {
	t := reflect.TypeOf(c)
	if t == nil {
		return "nil"
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
