package templates

// Defaults returns the built-in template set, one per operation kind. The
// response-format instructions in each template match what the
// corresponding parser extracts.
func Defaults() map[string]Template {
	out := make(map[string]Template, len(defaults))
	for _, t := range defaults {
		out[t.Name] = t
	}
	return out
}

var defaults = []Template{
	{
		Name:        "validate_concept",
		Description: "Checks a concept graph for contradictions, gaps and possible improvements.",
		Parameters:  []string{"concept_name", "concept_description", "graph_description"},
		Text: `You are an expert in philosophy. Analyze the philosophical concept "{{concept_name}}".

Concept description:
{{concept_description}}

Concept graph:
{{graph_description}}

Structure your answer as exactly four numbered sections:

1. General analysis
A short overall assessment of the concept's coherence and completeness.

2. Contradictions
One bullet ("- ") per contradiction between categories or connections. Mark each as a minor or critical issue.

3. Missing elements
One bullet ("- ") per category or connection the concept lacks. Mark each as a minor or critical gap.

4. Improvement suggestions
One bullet ("- ") per suggestion. State for each whether it means adding a category, adding a connection, modifying a category or modifying a connection.`,
	},
	{
		Name:        "enrich_category",
		Description: "Generates extended context for a single category.",
		Parameters:  []string{"concept_name", "category_name", "category_definition", "graph_description"},
		Text: `You are an expert in philosophy. Enrich the category "{{category_name}}" of the concept "{{concept_name}}".

Category definition:
{{category_definition}}

Concept graph for context:
{{graph_description}}

Answer with these headings, in order:

## Extended description
A deeper treatment of the category within this concept.

## Alternative interpretations
One bullet per alternative reading of the category.

## Historical analogs
One bullet per historical thinker or school that used a comparable notion.

## Related concepts
One bullet per related philosophical concept.`,
	},
	{
		Name:        "enrich_connection",
		Description: "Generates extended context for a single connection.",
		Parameters:  []string{"concept_name", "source_name", "target_name", "connection_type", "connection_description"},
		Text: `You are an expert in philosophy. Enrich the {{connection_type}} connection from "{{source_name}}" to "{{target_name}}" in the concept "{{concept_name}}".

Connection description:
{{connection_description}}

Answer with these headings, in order:

## Extended description
A deeper treatment of how the two categories relate.

## Alternative interpretations
One bullet per alternative reading of the connection.

## Historical analogs
One bullet per historical precedent for this relation.

## Related concepts
One bullet per related philosophical concept.`,
	},
	{
		Name:        "generate_theses",
		Description: "Derives theses from a concept graph.",
		Parameters:  []string{"concept_name", "graph_description", "count", "thesis_type", "style"},
		Text: `You are an expert in philosophy. Derive {{count}} {{thesis_type}} theses from the concept "{{concept_name}}", written in a {{style}} style.

Concept graph:
{{graph_description}}

Format each thesis as a numbered entry:

1. The thesis text.
   - Source: comma-separated names of the categories the thesis is derived from
   - Justification: one sentence explaining the derivation`,
	},
	{
		Name:        "analyze_compatibility",
		Description: "N-way compatibility analysis across source concept graphs.",
		Parameters:  []string{"graphs_description"},
		Text: `You are an expert in philosophy. Analyze how compatible the following concepts are for synthesis into a single new concept.

Source concepts:
{{graphs_description}}

Answer with these headings, in order:

## Fully compatible elements
One "### <element name>" sub-heading per category or connection that transfers cleanly. Under each, a "Reason of compatibility:" line.

## Potentially compatible elements
One "### <element name>" sub-heading per element that transfers under conditions. Under each, a "Conditions of compatibility:" line.

## Incompatible elements
One "### <element name>" sub-heading per element that cannot coexist. Under each, a "Reason of incompatibility:" line.

## Synthesis strategies
One "### <strategy name>" sub-heading per strategy. Under each:
Description: what the strategy does
Benefits: comma-separated or bulleted gains
Limitations: comma-separated or bulleted losses
Recommended: yes or no`,
	},
	{
		Name:        "synthesize",
		Description: "Synthesizes one new concept graph out of several sources.",
		Parameters:  []string{"graphs_description", "method", "priorities"},
		Text: `You are an expert in philosophy. Synthesize one new philosophical concept from the following source concepts using the "{{method}}" method.

Source concepts with priority weights:
{{priorities}}

{{graphs_description}}

Answer in this exact structure:

# <name of the new concept>

## Description
A paragraph describing the synthesized concept.

## Categories
One "### <category name>" sub-heading per category of the new concept. Under each, its definition, then an optional "Origin: <source concept or category it derives from>" line.

## Connections
One bullet per connection, in the form:
- SourceCategory -> TargetCategory (type): description
Use "<->" for bidirectional connections. Optionally follow a bullet with an indented "Origin: ..." line.`,
	},
	{
		Name:        "critical_analysis",
		Description: "Scores a synthesized concept against its sources.",
		Parameters:  []string{"result_description", "sources_description"},
		Text: `You are an expert in philosophy. Critically analyze the following synthesized concept against its source concepts.

Synthesized concept:
{{result_description}}

Source concepts:
{{sources_description}}

Answer with these headings, each starting with a "Score: <value> / 1" line followed by analysis:

## Internal consistency
Score: <0..1> / 1
Analysis, then an "Issues:" list of remaining inconsistencies if any.

## Philosophical novelty
Score: <0..1> / 1
Analysis, then a "Novel aspects:" list of what is genuinely new.

## Preservation of value
Score: <0..1> / 1
Analysis, then "Preserved:" and "Lost:" lists.

## Contradiction resolution
Score: <0..1> / 1
Analysis, then "Resolved:" and "Remaining:" lists.

## Potential issues
One "### <issue title>" sub-heading per issue. Under each, a "Severity: low|medium|high" line, the issue text, and an optional "Potential solution:" line.`,
	},
}
