package survey

import "strings"

// Placeholder renders in place of any missing or empty value so the formatted
// submission always has the same fully-enumerated shape.
const Placeholder = "—"

// FormatSubmission renders the notification text for the operator. The output
// is deterministic: contact block first, then every question in catalog order
// with its fixed label. Multi-select answers join with ", " in the order the
// user picked them. Missing values render as Placeholder.
func FormatSubmission(sub Submission) string {
	var b strings.Builder

	b.WriteString("New lead\n\n")
	writeField(&b, "Name", sub.Contact.FirstName)
	writeField(&b, "Email", sub.Contact.Email)
	phone := ""
	if sub.Contact.Phone != "" {
		phone = FormatPhone(sub.Contact.Phone)
	}
	writeField(&b, "Phone", phone)
	writeField(&b, "Company", sub.Contact.Company)

	b.WriteString("\n")
	for _, q := range Questions() {
		answer := sub.Answers[q.ID]
		value := answer.Value
		if q.Kind == MultiSelect {
			value = strings.Join(answer.Values, ", ")
		}
		writeField(&b, q.Label, value)
	}

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		value = Placeholder
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
