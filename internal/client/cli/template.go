package cli

import (
	"text/template"
)

var templates = template.Must(template.New("cli").Funcs(template.FuncMap{
	"truncate": truncate,
}).Parse(`
{{- define "quote" -}}
"{{ .Text }}"
   Category: {{ .Category }}
   ID:       {{ .ID }}
{{ end -}}

{{- define "list" -}}
{{- if eq (len .Quotes) 0 -}}
No quotes found in "{{ .Category }}".

Use 'quotes add' or 'quotes import FILE' to add some.
{{ else -}}
Found {{ len .Quotes }} quote(s) in "{{ .Category }}":
{{ range .Quotes }}
- {{ truncate .Text 70 }}
   [{{ .Category }}] {{ .ID }}
{{- end }}
{{ end -}}
{{ end -}}

{{- define "stats" -}}
Total quotes:  {{ .Total }}
Categories:    {{ .Categories }}
Custom quotes: {{ .Custom }}
Storage used:  {{ .PayloadBytes }} bytes
{{ end -}}

{{- define "status" -}}
Status:        {{ .StatusText }}
Online:        {{ if .IsOnline }}yes{{ else }}no{{ end }}
Sync enabled:  {{ if .SyncEnabled }}yes{{ else }}no{{ end }}
Last sync:     {{ with .LastSyncAt }}{{ .Format "2006-01-02 15:04:05" }}{{ else }}never{{ end }}
Policy:        {{ .Policy }}
Pending push:  {{ len .PendingPushes }}
Conflicts:     {{ len .PendingConflicts }}
{{- with .LastMessage }}
Last message:  {{ . }}
{{- end }}
{{- with .LastError }}
Last error:    {{ . }}
{{- end }}
{{ end -}}

{{- define "conflict" -}}
- {{ .RecordID }} (detected {{ .DetectedAt.Format "2006-01-02 15:04:05" }})
{{- range .Differences }}
   {{ .Field }}:
      local:  {{ .LocalValue }}
      server: {{ .RemoteValue }}
{{- end }}
{{ end -}}
`))
