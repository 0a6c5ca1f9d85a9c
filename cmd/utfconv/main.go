// Command utfconv validates, inspects, and transcodes Unicode text files
// between UTF-8, UTF-16LE, UTF-16BE, and UTF-32.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"go.uber.org/zap"

	"github.com/biggeezerdevelopment/simdutf-go/internal/codec"
)

func main() {
	var (
		inPath   = flag.String("in", "", "Input file (default stdin)")
		outPath  = flag.String("out", "", "Output file (default stdout)")
		from     = flag.String("from", "utf8", "Input encoding: utf8, utf16le, utf16be, utf32")
		to       = flag.String("to", "", "Output encoding; empty means validate only")
		count    = flag.Bool("count", false, "Print the code point count and exit")
		detect   = flag.Bool("detect", false, "Report plausible encodings and exit")
		lossy    = flag.Bool("lossy", false, "Skip malformed sequences instead of failing")
		implName = flag.String("impl", "", "Force an implementation (scalar, sse2, neon, avx2, avx512)")
		cpuInfo  = flag.Bool("cpuinfo", false, "Print CPU capability report and exit")
		verbose  = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	if *cpuInfo {
		printCPUInfo()
		return
	}

	impl := codec.Active()
	if *implName != "" {
		forced, ok := codec.ByName(*implName)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown implementation %q\n", *implName)
			os.Exit(1)
		}
		if !forced.Available() {
			fmt.Fprintf(os.Stderr, "Error: implementation %q not available on this CPU\n", *implName)
			os.Exit(1)
		}
		impl = forced
	}
	logger.Info("selected implementation", zap.String("name", impl.Name()))

	if err := run(logger, impl, *inPath, *outPath, *from, *to, *count, *detect, *lossy); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, impl *codec.Impl, inPath, outPath, from, to string, count, detect, lossy bool) error {
	data, err := readInput(inPath)
	if err != nil {
		return err
	}
	logger.Info("read input", zap.Int("bytes", len(data)))

	if detect {
		set := impl.DetectEncodings(data)
		fmt.Println(set)
		return nil
	}

	src, ok := encodingByName(from)
	if !ok {
		return fmt.Errorf("unknown encoding %q", from)
	}
	data = codec.TrimBOM(data, src)

	if count {
		n, err := countUnits(impl, src, data)
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	}

	if to == "" {
		res := validate(impl, src, data)
		if !res.Ok() {
			return fmt.Errorf("invalid %s: %s at code unit %d", src, res.Err, res.Offset)
		}
		logger.Info("input valid", zap.Int("units", res.Count))
		return nil
	}

	dst, ok := encodingByName(to)
	if !ok {
		return fmt.Errorf("unknown encoding %q", to)
	}
	out, err := transcode(impl, src, dst, data, lossy)
	if err != nil {
		return err
	}
	logger.Info("transcoded", zap.Int("bytes", len(out)))
	return writeOutput(outPath, out)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func encodingByName(name string) (codec.Encoding, bool) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return codec.UTF8, true
	case "utf16le", "utf-16le":
		return codec.UTF16LE, true
	case "utf16be", "utf-16be":
		return codec.UTF16BE, true
	case "utf32", "utf32le", "utf-32le":
		return codec.UTF32LE, true
	default:
		return 0, false
	}
}

func validate(impl *codec.Impl, e codec.Encoding, b []byte) codec.Result {
	switch e {
	case codec.UTF16LE:
		return impl.ValidateUTF16LEWithErrors(b)
	case codec.UTF16BE:
		return impl.ValidateUTF16BEWithErrors(b)
	case codec.UTF32LE:
		return impl.ValidateUTF32WithErrors(b)
	default:
		return impl.ValidateUTF8WithErrors(b)
	}
}

func countUnits(impl *codec.Impl, e codec.Encoding, b []byte) (int, error) {
	if res := validate(impl, e, b); !res.Ok() {
		return 0, fmt.Errorf("invalid %s: %s at code unit %d", e, res.Err, res.Offset)
	}
	switch e {
	case codec.UTF16LE:
		return impl.CountUTF16LE(b), nil
	case codec.UTF16BE:
		return impl.CountUTF16BE(b), nil
	case codec.UTF32LE:
		return impl.CountUTF32(b), nil
	default:
		return impl.CountUTF8(b), nil
	}
}

type convertFn func(src, dst []byte) codec.Result

type direction struct {
	length  func(b []byte) int
	worst   func(b []byte) int
	unit    int
	strict  convertFn
	relaxed convertFn
}

func transcode(impl *codec.Impl, from, to codec.Encoding, data []byte, lossy bool) ([]byte, error) {
	if from == to {
		out := make([]byte, len(data))
		copy(out, data)
		return out, nil
	}
	d, err := directionFor(impl, from, to)
	if err != nil {
		return nil, err
	}

	fn, sizeOf := d.strict, d.length
	if lossy {
		// The length estimators assume well-formed input, so a malformed
		// source gets the per-unit worst case instead.
		fn, sizeOf = d.relaxed, d.worst
	}
	dst := make([]byte, sizeOf(data)*d.unit)
	res := fn(data, dst)
	if !res.Ok() {
		return nil, fmt.Errorf("convert %s to %s: %s at code unit %d", from, to, res.Err, res.Offset)
	}
	return dst[:res.Count*d.unit], nil
}

// Worst-case destination units for an arbitrary byte buffer: every source
// unit may decode on its own.
func worstFromUTF8(b []byte) int  { return len(b) }
func worstFromUTF16(b []byte) int { return len(b) / 2 }
func worstFromUTF32(b []byte) int { return len(b) / 4 }

// Each 16-bit unit expands to at most three UTF-8 bytes; a surrogate
// pair's four bytes stay under two units' budget.
func worstUTF16ToUTF8(b []byte) int { return 3 * (len(b) / 2) }

func worstUTF32ToUTF16(b []byte) int { return 2 * (len(b) / 4) }

func directionFor(impl *codec.Impl, from, to codec.Encoding) (direction, error) {
	switch {
	case from == codec.UTF8 && to == codec.UTF16LE:
		return direction{impl.UTF16LengthFromUTF8, worstFromUTF8, 2, impl.ConvertUTF8ToUTF16LE, impl.ConvertValidUTF8ToUTF16LE}, nil
	case from == codec.UTF8 && to == codec.UTF16BE:
		return direction{impl.UTF16LengthFromUTF8, worstFromUTF8, 2, impl.ConvertUTF8ToUTF16BE, impl.ConvertValidUTF8ToUTF16BE}, nil
	case from == codec.UTF8 && to == codec.UTF32LE:
		return direction{impl.UTF32LengthFromUTF8, worstFromUTF8, 4, impl.ConvertUTF8ToUTF32, impl.ConvertValidUTF8ToUTF32}, nil
	case from == codec.UTF16LE && to == codec.UTF8:
		return direction{impl.UTF8LengthFromUTF16LE, worstUTF16ToUTF8, 1, impl.ConvertUTF16LEToUTF8, impl.ConvertValidUTF16LEToUTF8}, nil
	case from == codec.UTF16BE && to == codec.UTF8:
		return direction{impl.UTF8LengthFromUTF16BE, worstUTF16ToUTF8, 1, impl.ConvertUTF16BEToUTF8, impl.ConvertValidUTF16BEToUTF8}, nil
	case from == codec.UTF16LE && to == codec.UTF32LE:
		return direction{impl.UTF32LengthFromUTF16LE, worstFromUTF16, 4, impl.ConvertUTF16LEToUTF32, impl.ConvertValidUTF16LEToUTF32}, nil
	case from == codec.UTF16BE && to == codec.UTF32LE:
		return direction{impl.UTF32LengthFromUTF16BE, worstFromUTF16, 4, impl.ConvertUTF16BEToUTF32, impl.ConvertValidUTF16BEToUTF32}, nil
	case from == codec.UTF32LE && to == codec.UTF8:
		worst := func(b []byte) int { return 4 * worstFromUTF32(b) }
		return direction{impl.UTF8LengthFromUTF32, worst, 1, impl.ConvertUTF32ToUTF8, impl.ConvertValidUTF32ToUTF8}, nil
	case from == codec.UTF32LE && to == codec.UTF16LE:
		return direction{impl.UTF16LengthFromUTF32, worstUTF32ToUTF16, 2, impl.ConvertUTF32ToUTF16LE, impl.ConvertValidUTF32ToUTF16LE}, nil
	case from == codec.UTF32LE && to == codec.UTF16BE:
		return direction{impl.UTF16LengthFromUTF32, worstUTF32ToUTF16, 2, impl.ConvertUTF32ToUTF16BE, impl.ConvertValidUTF32ToUTF16BE}, nil
	case from == codec.UTF16LE && to == codec.UTF16BE, from == codec.UTF16BE && to == codec.UTF16LE:
		swap := func(src, dst []byte) codec.Result { return impl.ChangeEndiannessUTF16(src, dst) }
		return direction{worstFromUTF16, worstFromUTF16, 2, swap, swap}, nil
	default:
		return direction{}, fmt.Errorf("unsupported conversion %s to %s", from, to)
	}
}

func printCPUInfo() {
	fmt.Printf("CPU:      %s\n", cpuid.CPU.BrandName)
	fmt.Printf("Arch:     %s\n", runtime.GOARCH)
	fmt.Printf("Cores:    %d physical, %d logical\n", cpuid.CPU.PhysicalCores, cpuid.CPU.LogicalCores)
	fmt.Printf("Features: AVX2=%v AVX512=%v SSE2=%v NEON=%v\n",
		cpuid.CPU.Supports(cpuid.AVX2),
		cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512BW, cpuid.AVX512VL),
		cpuid.CPU.Supports(cpuid.SSE2),
		cpuid.CPU.Supports(cpuid.ASIMD))

	fmt.Println("\nImplementations:")
	for _, d := range codec.Descriptors() {
		mark := " "
		if d.Selected {
			mark = "*"
		}
		fmt.Printf("  %s %-8s priority=%-3d available=%v\n", mark, d.Name, d.Priority, d.Available)
	}
}
