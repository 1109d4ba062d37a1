// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timingstat

import (
	"io"

	"github.com/google/safehtml/template"

	"github.com/fabie37/DependacyDiscoverer/timingfmt"
)

var htmlTemplate = template.Must(template.New("timings").ParseFromTrustedTemplate(template.MakeTrustedTemplate(`
<table class='timings'>
<tr><th>threads<th>real (ms)<th>user (ms)<th>sys (ms)
{{range .Rows -}}
<tr><td>{{.Threads}}<td>{{.Real}}<td>{{.User}}<td>{{.Sys}}
{{end -}}
</table>
`)))

type htmlRow struct {
	Threads         int
	Real, User, Sys string
}

// FormatHTML writes t to w as an HTML table, one row per thread
// count, with times in milliseconds.
func FormatHTML(w io.Writer, t *timingfmt.Table) error {
	var data struct{ Rows []htmlRow }
	for i, m := range t.Rows {
		data.Rows = append(data.Rows, htmlRow{i + 1, ms(m.Real), ms(m.User), ms(m.Sys)})
	}
	return htmlTemplate.Execute(w, data)
}
