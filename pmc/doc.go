// Package pmc enumerates registered process modeling components. Each
// component is registered under /pmcs/<uuid> in the middleware registry;
// this package reads those keys into RegistrationDetails records,
// filters them by category, and exports them as JSON.
package pmc
