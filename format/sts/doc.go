// Package sts reads Steiner Triple System USCP instances: subsets-number
// then points-number, followed by exactly three 1-based subset indices
// per point. The format has no writer here, matching the reference
// implementation's own unimplemented writer for this format.
package sts
