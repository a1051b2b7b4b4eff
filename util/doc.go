// Package util provides small generic and string helpers shared by the
// validify packages.
package util
