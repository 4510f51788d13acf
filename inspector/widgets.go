package inspector

import (
	"fmt"
	"io"
	"strings"
)

const (
	barWidth  = 20
	nameWidth = 16
)

// WriteLabel renders a text value.
func WriteLabel(w io.Writer, name string, value any, options map[string]string) error {
	_, err := fmt.Fprintf(w, "  %-*s %s\n", nameWidth, name, FormatValue(value, options["fmt"]))
	return err
}

// WriteBar renders a horizontal progress bar scaled by the max option.
func WriteBar(w io.Writer, name string, value float64, options map[string]string) error {
	_, err := fmt.Fprintf(w, "  %-*s %s %.2f\n", nameWidth, name, bar(value/GetMax(options)), value)
	return err
}

// WriteBarGroup renders one bar per value, labelled by the labels option when present.
func WriteBarGroup(w io.Writer, name string, values []float64, options map[string]string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", name); err != nil {
		return err
	}
	labels := parseLabels(options, len(values))
	maxVal := GetMax(options)
	for i, v := range values {
		label := fmt.Sprintf("[%d]", i)
		if labels != nil {
			label = labels[i]
		}
		if _, err := fmt.Fprintf(w, "    %-*s %s %.2f\n", nameWidth-2, label, bar(v/maxVal), v); err != nil {
			return err
		}
	}
	return nil
}

// WriteBool renders a checkbox.
func WriteBool(w io.Writer, name string, value bool) error {
	mark := "[ ]"
	if value {
		mark = "[x]"
	}
	_, err := fmt.Fprintf(w, "  %-*s %s\n", nameWidth, name, mark)
	return err
}

// WriteField renders a field using its widget type.
func WriteField(w io.Writer, field Field) error {
	switch field.Widget {
	case WidgetBar:
		if values, ok := GetFloatSlice(field.Value); ok {
			return WriteBarGroup(w, field.Name, values, field.Options)
		}
		if v, ok := GetFloatValue(field.Value); ok {
			return WriteBar(w, field.Name, v, field.Options)
		}
		return WriteLabel(w, field.Name, field.Value, field.Options)

	case WidgetBool:
		if v, ok := field.Value.(bool); ok {
			return WriteBool(w, field.Name, v)
		}
		return WriteLabel(w, field.Name, field.Value, field.Options)

	default:
		return WriteLabel(w, field.Name, field.Value, field.Options)
	}
}

// bar draws ratio, clamped to [0,1], as a fixed-width text bar.
func bar(ratio float64) string {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio*barWidth + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

func parseLabels(options map[string]string, count int) []string {
	if options == nil {
		return nil
	}
	raw, ok := options["labels"]
	if !ok || raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	if len(parts) != count {
		return nil
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
