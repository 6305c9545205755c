// SPDX-License-Identifier: MIT

package unsigned

import "errors"

// ErrInvariant is the only error this package reports. It means the supplied
// value was negative or NaN; nothing more is known or reported.
//
// TryFrom returns it unwrapped. Decoders (UnmarshalText, UnmarshalJSON,
// UnmarshalYAML, Scan) wrap it with context, so match with errors.Is.
var ErrInvariant = errors.New("unsigned: invariant violated")
