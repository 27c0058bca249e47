// Package codes holds the official injury-code table used to classify
// surgical lesions. The table is fixed at build time and read-only.
package codes

import "strings"

// Registry maps official injury codes ("DD DD DDD") to their names.
// Build one with NewRegistry at startup and pass it by handle; it is
// immutable afterwards and safe for concurrent reads.
type Registry struct {
	entries map[string]string
}

// NewRegistry returns the registry seeded with the hand/wrist surgery
// section of the national fee schedule (section 21 04).
func NewRegistry() *Registry {
	return &Registry{entries: map[string]string{
		"21 04 090": "AMPUTACIÓN PULPEJOS (PLASTÍA KUTLER O SIMILARES)",
		"21 04 091": "CONTRACTURA DUPUYTREN, TRAT. QUIR., CADA TIEMPO",
		"21 04 092": "CONTUSIÓN-COMPRESIÓN GRAVE MANO, TRAT. QUIR. INCLUYE INCISIONES LIBERADORAS Y/O FASCIOTOMÍA Y/O ESCARECTOMÍA Y/O INJERTOS PIEL INMEDIATOS Y SÍNTESIS PERCUTÁNEA",
		"21 04 093": "DEDOS EN GATILLO, TRAT. QUIR., CUALQUIER NÚMERO",
		"21 04 094": "FLEGMÓN MANO, TRAT. QUIR.",
		"21 04 095": "LUXOFRACTURA METACARPOFALÁNGICA O INTERFALÁNGICA, TRAT. QUIR.",
		"21 04 096": "MANO REUMÁTICA EN RÁFAGA: TRASLOCACIONES TENDINOSAS, PLASTÍAS CAPSULARES, TENOTOMÍAS, INMOVILIZACIÓN POSTOPERATORIA",
		"21 04 097": "MANO REUMÁTICA: IMPLANT. SILASTIC, CUALQ. NÚMERO (PROC. AUT.)",
		"21 04 098": "MUTILACIÓN GRAVE MANO, ASEO. QUIR. COMPLETO C/S OSTEOSÍNTESIS, C/S INJERTOS",
		"21 04 099": "OSTEOSÍNTESIS METACARPIANAS O DE FALANGES, CUALQUIER TÉCNICA",
		"21 04 100": "PANADIZO, TRAT. QUIR.",
		"21 04 101": "PULGARIZACIÓN DEDO (ÍNDICE O ANULAR)",
		"21 04 102": "REIMPLANTE MANO O DEDO(S)",
		"21 04 103": "REPARACIÓN FLEXORES: PRIMER TIEMPO ESPACIADOR SILASTIC",
		"21 04 104": "REPARACIÓN NERVIO DIGITAL CON INJERTO INTERFASCICULAR: CUALQUIER NÚMERO",
		"21 04 105": "RUPTURAS CERRADAS CÁPSULO-LIGAMENT. O TENDINOSAS, TRAT. QUIR. MANO",
		"21 04 106": "SUTURA NERVIO(S) DIGITAL(ES); MICROCIRUGÍA",
		"21 04 107": "TENORRAFIA EXTENSORES MANO",
		"21 04 108": "TENORRAFIA O INJERTOS FLEXORES MANO",
		"21 04 109": "TENOSINOVITIS SÉPTICA, TRAT. QUIR. MANO",
		"21 04 110": "TRASPLANTE MICROQUIRÚRGICO PARA PULGAR",
		"21 04 111": "TRANSPOSICIONES TENDINOSAS FLEXORAS O EXTENSORAS MANO",
		"21 04 203": "TRATAMIENTO QUIR., DEDOS EN GATILLO, CUALQUIER NÚMERO TÉC. WALANT (ANESTESIA LOCAL SIN TORNIQUETE)",
	}}
}

// Lookup returns the injury name for an exact code.
func (r *Registry) Lookup(code string) (string, bool) {
	name, ok := r.entries[code]
	return name, ok
}

// All returns a copy of the full code table.
func (r *Registry) All() map[string]string {
	out := make(map[string]string, len(r.entries))
	for code, name := range r.entries {
		out[code] = name
	}
	return out
}

// Search returns the entries whose code or name contains term,
// case-insensitive. A blank term returns the whole table.
func (r *Registry) Search(term string) map[string]string {
	term = strings.TrimSpace(term)
	if term == "" {
		return r.All()
	}
	lower := strings.ToLower(term)
	out := map[string]string{}
	for code, name := range r.entries {
		if strings.Contains(strings.ToLower(code), lower) ||
			strings.Contains(strings.ToLower(name), lower) {
			out[code] = name
		}
	}
	return out
}

// Len reports the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
