// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package pathway implements the career recommendation engine: role
// determination, match scoring, and curriculum personalization.
//
// The engine is deterministic. Given the same assessment it always produces
// the same role, the same match score, and the same personalized pathway,
// which makes responses cacheable and reproducible across replicas. All
// reference data (role profiles, courses, interest tables) is compiled in
// and never mutated at runtime.
package pathway
