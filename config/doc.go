// Package config loads the Options record consumed by every search
// algorithm and reachability builder: an explicit Options value is passed
// into every constructor, never read from process-wide state. Options are
// ordinary Go values; this package only adds a YAML decoding path on top
// of them, grounded on gopkg.in/yaml.v3.
package config
