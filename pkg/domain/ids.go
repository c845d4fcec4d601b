// Package domain holds the shared value types of the punsj backend: typed
// identifiers, civil dates, periods and the hour/minute pairs caseworkers
// punch in. Everything here is a plain value with no I/O and no clock reads.
package domain

import "strings"

// JournalpostID identifies an inbound journal post (scanned form or digital
// submission) in the archive system.
type JournalpostID string

func (j JournalpostID) String() string { return string(j) }

// ErSatt reports whether the id carries a value.
func (j JournalpostID) ErSatt() bool { return strings.TrimSpace(string(j)) != "" }

// SoknadID identifies one punched application draft.
type SoknadID string

func (s SoknadID) String() string { return string(s) }

func (s SoknadID) ErSatt() bool { return strings.TrimSpace(string(s)) != "" }

// NorskIdent is a national identity number (fødselsnummer or d-nummer).
type NorskIdent string

func (n NorskIdent) String() string { return string(n) }

func (n NorskIdent) ErSatt() bool { return strings.TrimSpace(string(n)) != "" }

// AktorID is the registry-internal person identifier used by upstream
// systems. It must be resolved to a NorskIdent before leaving punsj.
type AktorID string

func (a AktorID) String() string { return string(a) }

func (a AktorID) ErSatt() bool { return strings.TrimSpace(string(a)) != "" }

// Saksnummer is the case number in the case-management system.
type Saksnummer string

func (s Saksnummer) String() string { return string(s) }

// Organisasjonsnummer identifies an employer or business.
type Organisasjonsnummer string

func (o Organisasjonsnummer) String() string { return string(o) }

func (o Organisasjonsnummer) ErSatt() bool { return strings.TrimSpace(string(o)) != "" }
