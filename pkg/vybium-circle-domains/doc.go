// Package vybiumcircledomains provides circle curve evaluation domains for
// Circle STARK proving systems.
//
// The library works over a CFFT-friendly prime field: an odd prime p with
// p ≡ 3 (mod 4) whose successor p+1 is a power of two. Over such a field
// the circle curve x² + y² = 1 carries a cyclic group of order p+1, and
// this package derives from it the evaluation domains a Circle STARK
// prover needs: the chain of power-of-two subgroups, twin-cosets, and
// standard-position cosets, together with the decomposition and halving
// transforms applied during recursive protocol steps.
//
// # Quick Start
//
// Creating a domain factory and a standard-position coset:
//
//	config := vybiumcircledomains.DefaultConfig()
//	factory, err := vybiumcircledomains.NewDomainFactory(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Pick an initial point of order 2^(n+1) from the subgroup chain
//	sub, err := factory.Chain().Subgroup(11)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	domain, err := factory.StandardPositionCoset(sub.Generator(), 10)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Stream the domain's points into the polynomial transform
//	iter, err := domain.Points()
//	if err != nil {
//		log.Fatal(err)
//	}
//	for p, ok := iter.Next(); ok; p, ok = iter.Next() {
//		consume(p)
//	}
//
// Reshaping a domain during recursion:
//
//	pieces, err := factory.Split(domain, 4) // 2^6 twin-cosets of size 2^4
//	smaller, err := factory.Halve(domain)   // standard coset of size 2^9
//
// # Architecture
//
// The library uses a hybrid public/private architecture:
//
// - pkg/vybium-circle-domains/: Public API (this package)
// - internal/vybium-circle-domains/: Private implementation (not importable)
//
// The public API provides stable interfaces for:
// - Field and circle point arithmetic
// - Subgroup chain construction
// - Coset domain construction, splitting, and halving
//
// Implementation details in internal/ can be refactored without breaking
// the public API.
//
// # Error Handling
//
// Every constructor and transform validates its own preconditions and
// returns a coded DomainError immediately; nothing substitutes a default
// or best-effort value, because a malformed domain yields a proving
// system that is unsound while appearing to work. Callers must treat any
// error from this package as fatal to domain setup.
//
// # References
//
// - Circle STARKs paper: https://eprint.iacr.org/2024/278
package vybiumcircledomains
