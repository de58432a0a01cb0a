//go:build (amd64 || arm64 || 386 || arm || riscv64 || loong64 || mips || mipsle || mips64 || mips64le || ppc64 || ppc64le || s390x || wasm) && !curve_portable

package curve

// fastLeadingZeros is set on architectures where bits.Len compiles to a
// single leading-zero-count instruction. Root2 uses Newton-Raphson there.
const fastLeadingZeros = true
