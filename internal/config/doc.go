// Package config loads vjsx configuration.
//
// The configuration lives in vjsx.yaml, vjsx.yml or vjsx.json. All fields
// are optional:
//
//	domProps:          # extra keys forced onto DOM properties
//	  - value
//	  - checked
//	log:
//	  level: info      # debug, info, warn, error
//	output:
//	  indent: 2        # JSON indentation of inspect output
//	metrics:
//	  enabled: false
//	  namespace: vjsx
package config
