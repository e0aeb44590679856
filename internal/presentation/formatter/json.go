package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// JSONFormatter renders a layout as indented JSON.
type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(writer io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: writer}
}

func (f *JSONFormatter) Format(data LayoutData) error {
	encoded, err := sonic.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.writer, string(encoded))
	return err
}
