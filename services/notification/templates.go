package notification

import (
	"fmt"
	"strings"
	"text/template"
)

// Message bodies are small enough to keep inline; the template name in
// the queued message selects one of these.
var messageTemplates = template.Must(template.New("notifications").Parse(`
{{define "reservation-created"}}Reservation confirmed!

Room: {{.roomName}}
Period: {{.rentedFrom}} to {{.rentedTo}}
Renter: {{.renterName}}
Owner: {{.ownerName}}
Reservation id: {{.reservationId}}{{end}}

{{define "reservation-canceled"}}Reservation canceled.

Room: {{.roomName}}
Period: {{.rentedFrom}} to {{.rentedTo}}
Renter: {{.renterName}}
Owner: {{.ownerName}}
Reservation id: {{.reservationId}}{{end}}
`))

// renderTemplate produces the message body for a template name and its
// metadata.
func renderTemplate(name string, metadata map[string]string) (string, error) {
	var sb strings.Builder
	if err := messageTemplates.ExecuteTemplate(&sb, name, metadata); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return strings.TrimSpace(sb.String()), nil
}
