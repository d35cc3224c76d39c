package cpu

import "testing"

func TestVendor(t *testing.T) {
	defer func() {
		cpuidFn = ID
	}()

	specs := []struct {
		eax, ebx, ecx, edx uint32
		exp                string
	}{
		// CPUID output from an Intel CPU
		{0xd, 0x756e6547, 0x6c65746e, 0x49656e69, "GenuineIntel"},
		// CPUID output from an AMD CPU
		{0x1, 0x68747541, 0x444d4163, 0x69746e65, "AuthenticAMD"},
	}

	for specIndex, spec := range specs {
		cpuidFn = func(_ uint32) (uint32, uint32, uint32, uint32) {
			return spec.eax, spec.ebx, spec.ecx, spec.edx
		}

		if got := Vendor(); string(got[:]) != spec.exp {
			t.Errorf("[spec %d] expected Vendor to return %q; got %q", specIndex, spec.exp, string(got[:]))
		}
	}
}
