//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || s390x || wasm) || curve_portable

package curve

// fastLeadingZeros is unset when no leading-zero instruction is known for
// the target, or when built with the curve_portable tag. Root2 uses bit
// search, which needs only multiply and compare.
const fastLeadingZeros = false
