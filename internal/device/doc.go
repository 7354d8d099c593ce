// Package device holds the Device Profiles for the supported Yamaha access
// points and resolves a user-supplied model id to one of them.
//
// A Profile owns the status page path and an ordered list of FieldRules. Each
// rule names the section heading and table row label the firmware prints
// next to a value, plus the output key the value is reported under. Adding a
// model means adding a Profile to the registry; the traversal itself lives in
// the scraper package.
//
// Resolve(addr, id) is the only entry point the scraper needs: it rejects
// unsupported ids before any URL is built or any network call is made.
package device
