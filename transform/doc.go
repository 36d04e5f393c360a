// Package transform maps Shin Megami Tensei III game records to RDF statements.
//
// Three transformers accumulate records and produce statements once:
//   - RaceTransformer: one rdf:type and one schema:name statement per distinct race.
//   - DemonTransformer: four statements per demon (type, name, race, base level).
//   - FusionRuleTransformer: a blank node per (demon1, demon2) race pair linking
//     the two input races to every result race.
//
// All race and demon identifiers come from a single naming authority
// (Identify), injected into each transformer, so a race name resolves to the
// same IRI wherever it appears. Vocabulary terms are resolved once per run by
// NewVocabulary. WithGraph attaches a named graph to every statement of a
// transformer, which turns its output into quads.
package transform
