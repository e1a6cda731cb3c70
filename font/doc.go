// font provides a small font collection keyed by family name and
// numeric weight, with parsing helpers and an embedded default
// family, so overlay elements can reference fonts symbolically
// ("Inter", 600) and still resolve to something drawable.
package font
