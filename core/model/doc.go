/*
Package model materializes raw declarations into a validated domain model.

A Model is built once from a schema.ProjectConfig and never mutated
afterwards. It holds the full set of declared and built-in types, a
hierarchical namespace tree over the root entity types, the compiled
permission profiles, and the lazily computed global relation set.

Construction always succeeds, even for semantically broken input. Problems
are reported through Validate, which returns an ordered list of diagnostics.
Callers must check the result before treating a model as usable.

Lookups come in three variants: tolerant ((Type, bool)), fallback (always
returns a Type, an invalid sentinel on miss) and strict ((Type, error)).
Strict lookups failing mean a broken invariant upstream, not a user mistake;
tolerant and fallback variants exist for call sites that are already past the
validation gate and want to keep operating over a partially invalid model.
*/
package model
