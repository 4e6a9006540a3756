package diagfmt

import (
	"encoding/json"
	"io"

	"shard/internal/diag"
	"shard/internal/source"
)

// jsonDiagnostic is the stable wire shape for tooling output.
type jsonDiagnostic struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Path     string `json:"path"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	Offset   uint32 `json:"offset"`
	Length   uint32 `json:"length"`
	Message  string `json:"message"`
}

// JSON renders diagnostics as a JSON array, one object per diagnostic,
// with 1-based line/column and byte offsets.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	out := make([]jsonDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		file := fs.Get(d.Primary.File)
		out = append(out, jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     file.Path,
			Line:     start.Line,
			Column:   start.Col,
			Offset:   d.Primary.Start,
			Length:   d.Primary.Len(),
			Message:  d.Message,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
