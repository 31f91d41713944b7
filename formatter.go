package pagelens

import "strings"

// FormatArchitecture renders a page outline as indented Markdown-style
// heading lines for use as compact LLM context.
func FormatArchitecture(architecture []PageHeading) string {
	if len(architecture) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, heading := range architecture {
		sb.WriteString("# ")
		sb.WriteString(heading.H1)
		sb.WriteString("\n")
		for _, child := range heading.Children {
			if child.Level == 3 {
				sb.WriteString("    ### ")
			} else {
				sb.WriteString("  ## ")
			}
			sb.WriteString(child.Text)
			sb.WriteString("\n")
		}
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// FormatNavigation renders the non-empty navigation regions as link lists.
// Regions are separated by blank lines.
func FormatNavigation(nav *NavigationContext) string {
	if nav.Empty() {
		return ""
	}

	regions := []struct {
		name  string
		links []PageLink
	}{
		{"Breadcrumbs", nav.Breadcrumbs},
		{"Main navigation", nav.MainNav},
		{"Sidebar", nav.Sidebar},
		{"Table of contents", nav.TableOfContents},
	}

	parts := make([]string, 0, len(regions))
	for _, region := range regions {
		if len(region.links) == 0 {
			continue
		}
		var sb strings.Builder
		sb.WriteString(region.name)
		sb.WriteString(":")
		for _, link := range region.links {
			sb.WriteString("\n- ")
			sb.WriteString(link.Text)
			sb.WriteString(" (")
			sb.WriteString(link.URL)
			sb.WriteString(")")
		}
		parts = append(parts, sb.String())
	}

	return strings.Join(parts, "\n\n")
}
