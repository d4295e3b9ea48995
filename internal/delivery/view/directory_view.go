package view

import (
	"html/template"
	"strings"

	"doc-booker/internal/domain/entity"
)

// DirectoryRenderer shapes grouped query results into the markup the
// directory widget swaps in. It preserves group and doctor order
// exactly as received and applies no business rules.
type DirectoryRenderer struct {
	tmpl *template.Template
}

const directoryTemplate = `{{- if not . -}}
<div class="doc-booker-directory__empty">
	<p>No doctors found for the selected filters.</p>
</div>
{{- else -}}
{{- range . }}
<section class="doc-booker-directory__group" data-letter="{{ .Letter }}">
	<header class="doc-booker-directory__group-header">
		<h2>{{ .Name }}</h2>
		{{- if .Description }}
		<p class="doc-booker-directory__group-description">{{ .Description }}</p>
		{{- end }}
	</header>
	<div class="doc-booker-directory__cards">
		{{- range .Doctors }}
		<article class="doc-booker-directory__card">
			{{- if .AvatarURL }}
			<div class="doc-booker-directory__avatar">
				<img class="doc-booker-directory__avatar-img" src="{{ .AvatarURL }}" alt="{{ .Name }}" />
			</div>
			{{- end }}
			<div class="doc-booker-directory__card-body">
				<h3 class="doc-booker-directory__card-title">{{ .Name }}</h3>
				<ul class="doc-booker-directory__meta">
					{{- if .Email }}
					<li><a href="mailto:{{ .Email }}">{{ .Email }}</a></li>
					{{- end }}
					{{- if .ProfileURL }}
					<li><a href="{{ .ProfileURL }}" target="_blank" rel="noopener noreferrer">View profile</a></li>
					{{- end }}
				</ul>
			</div>
		</article>
		{{- end }}
	</div>
</section>
{{- end }}
{{- end -}}`

func NewDirectoryRenderer() *DirectoryRenderer {
	return &DirectoryRenderer{
		tmpl: template.Must(template.New("directory").Parse(directoryTemplate)),
	}
}

// Render produces the results markup for the given groups, or the
// empty-state block when there are none.
func (r *DirectoryRenderer) Render(groups []entity.DirectoryGroup) (string, error) {
	var b strings.Builder
	if err := r.tmpl.Execute(&b, groups); err != nil {
		return "", err
	}
	return b.String(), nil
}
