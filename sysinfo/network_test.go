package sysinfo

import (
	"errors"
	"testing"
)

const ifconfigFixture = `lo0: flags=8049<UP,LOOPBACK,RUNNING,MULTICAST> mtu 16384
	inet 127.0.0.1 netmask 0xff000000
	inet6 ::1 prefixlen 128
en0: flags=8863<UP,BROADCAST,SMART,RUNNING,SIMPLEX,MULTICAST> mtu 1500
	inet6 fe80::1c2a:abcd%en0 prefixlen 64
	inet 192.168.1.42 netmask 0xffffff00 broadcast 192.168.1.255`

func TestFirstNonLoopbackInet(t *testing.T) {
	if got := firstNonLoopbackInet(ifconfigFixture); got != "192.168.1.42" {
		t.Fatalf("firstNonLoopbackInet() = %q; want %q", got, "192.168.1.42")
	}
}

func TestFirstNonLoopbackInetOnlyLoopback(t *testing.T) {
	out := "lo0: flags=8049<UP>\n\tinet 127.0.0.1 netmask 0xff000000\n"
	if got := firstNonLoopbackInet(out); got != "" {
		t.Fatalf("firstNonLoopbackInet() = %q; want empty", got)
	}
}

func TestParseIPAddrOutput(t *testing.T) {
	out := `2: enp5s0    inet 192.168.1.77/24 brd 192.168.1.255 scope global dynamic enp5s0\       valid_lft 85919sec preferred_lft 85919sec
3: wlan0    inet 10.0.0.12/16 scope global wlan0\       valid_lft forever preferred_lft forever`

	if got := parseIPAddrOutput(out); got != "192.168.1.77" {
		t.Fatalf("parseIPAddrOutput() = %q; want %q", got, "192.168.1.77")
	}
	if got := parseIPAddrOutput("garbage with no address"); got != "" {
		t.Fatalf("parseIPAddrOutput() = %q; want empty", got)
	}
}

func TestCollectLocalIPLinux(t *testing.T) {
	c := newTestCollector()
	c.run = func(name string, args ...string) (string, error) {
		if name == "ip" {
			return "2: eth0    inet 172.16.4.9/12 brd 172.31.255.255 scope global eth0", nil
		}
		return "", errors.New("unexpected command")
	}

	if got := c.collectLocalIP(FamilyLinux); got != "172.16.4.9" {
		t.Fatalf("collectLocalIP() = %q; want %q", got, "172.16.4.9")
	}
}

func TestCollectLocalIPLinuxHostnameFallback(t *testing.T) {
	c := newTestCollector()
	c.hostname = func() (string, error) { return "workbench", nil }
	c.lookupHost = func(host string) ([]string, error) {
		if host != "workbench" {
			return nil, errors.New("unexpected host")
		}
		return []string{"fe80::1", "10.0.0.5"}, nil
	}

	if got := c.collectLocalIP(FamilyLinux); got != "10.0.0.5" {
		t.Fatalf("collectLocalIP() = %q; want the first IPv4 answer", got)
	}
}

func TestCollectLocalIPMacOS(t *testing.T) {
	c := newTestCollector()
	c.run = func(name string, args ...string) (string, error) {
		if name == "ifconfig" {
			return ifconfigFixture, nil
		}
		return "", errors.New("unexpected command")
	}

	if got := c.collectLocalIP(FamilyMacOS); got != "192.168.1.42" {
		t.Fatalf("collectLocalIP() = %q; want %q", got, "192.168.1.42")
	}
}

func TestCollectLocalIPFallsBackToNA(t *testing.T) {
	c := newTestCollector()
	for _, family := range []Family{FamilyLinux, FamilyMacOS, FamilyBSD, FamilyUnknown} {
		if got := c.collectLocalIP(family); got != ipNA {
			t.Fatalf("collectLocalIP(%v) = %q; want %q", family, got, ipNA)
		}
	}
}

func TestCollectLocalIPUnknownFamilySkipsProbes(t *testing.T) {
	c := newTestCollector()
	probed := false
	c.run = func(name string, args ...string) (string, error) {
		probed = true
		return "", errors.New("should not run")
	}

	if got := c.collectLocalIP(FamilyUnknown); got != ipNA {
		t.Fatalf("collectLocalIP(Unknown) = %q; want %q", got, ipNA)
	}
	if probed {
		t.Error("collectLocalIP(Unknown) must not invoke the interface tools")
	}
}
