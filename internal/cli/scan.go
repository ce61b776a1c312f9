package cli

import (
	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups <dir>",
	Short: "Group data files under their header files",
	Long: `List every sample group in a directory.

Each header file (e.g. "a_Header.txt") defines a prefix ("a"). The group for
that prefix holds every other entry of the directory whose name starts with
the prefix, in lexical order. A header without data files still produces an
empty group, and a data file can belong to several groups when prefixes
overlap.

The directory is listed exactly once, so headers and data files always come
from the same snapshot.

Examples:
  # Groups for the default "_Header.txt" marker
  csvcat groups ./samples

  # Merge headers that yield the same prefix
  csvcat groups ./samples --duplicates merge

  # Headers named "Header_<sample>.txt", output as JSON
  csvcat groups ./samples --marker Header --match contains -o json`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runGroups,
}

var headersCmd = &cobra.Command{
	Use:   "headers <dir>",
	Short: "List header files in a directory",
	Long: `List the entries of a directory that carry the header marker.

Examples:
  csvcat headers ./samples
  csvcat headers ./samples --marker .hdr -o yaml`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runHeaders,
}

var prefixesCmd = &cobra.Command{
	Use:   "prefixes <dir>",
	Short: "List sample prefixes derived from header files",
	Long: `List one prefix per header file, in header order. Duplicate prefixes are
kept.

Examples:
  csvcat prefixes ./samples
  csvcat prefixes ./samples -o json`,
	Args:              RequireDirectory,
	ValidArgsFunction: completeDirectories,
	RunE:              runPrefixes,
}

var (
	groupsFlags   scanFlags
	headersFlags  scanFlags
	prefixesFlags scanFlags
)

func init() {
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(headersCmd)
	rootCmd.AddCommand(prefixesCmd)

	addFormatFlag(groupsCmd, &groupsFlags.format)
	addMarkerFlags(groupsCmd, &groupsFlags)
	groupsCmd.Flags().StringVar(&groupsFlags.duplicates, "duplicates", "", "Headers sharing a prefix: keep (one group each) or merge (default keep)")
	_ = groupsCmd.RegisterFlagCompletionFunc("duplicates", completeDuplicatePolicies)

	addFormatFlag(headersCmd, &headersFlags.format)
	addMarkerFlags(headersCmd, &headersFlags)

	addFormatFlag(prefixesCmd, &prefixesFlags.format)
	addMarkerFlags(prefixesCmd, &prefixesFlags)
}

func runGroups(cmd *cobra.Command, args []string) error {
	dir := args[0]
	logger := newLogger(cmd)
	logger.Verbose("Grouping files in %s", dir)

	r, err := newRenderer(cmd, groupsFlags.format)
	if err != nil {
		return err
	}
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	applyScanFlags(cmd, cfg, groupsFlags)

	s, err := newScannerFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	groups, err := s.GroupFiles(dir)
	if err != nil {
		return err
	}
	return r.Groups(groups)
}

func runHeaders(cmd *cobra.Command, args []string) error {
	dir := args[0]
	logger := newLogger(cmd)
	logger.Verbose("Locating header files in %s", dir)

	r, err := newRenderer(cmd, headersFlags.format)
	if err != nil {
		return err
	}
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	applyScanFlags(cmd, cfg, headersFlags)

	s, err := newScannerFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	headers, err := s.LocateHeaders(dir)
	if err != nil {
		return err
	}
	return r.Headers(headers)
}

func runPrefixes(cmd *cobra.Command, args []string) error {
	dir := args[0]
	logger := newLogger(cmd)
	logger.Verbose("Extracting prefixes in %s", dir)

	r, err := newRenderer(cmd, prefixesFlags.format)
	if err != nil {
		return err
	}
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	applyScanFlags(cmd, cfg, prefixesFlags)

	s, err := newScannerFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	prefixes, err := s.Prefixes(dir)
	if err != nil {
		return err
	}
	return r.Prefixes(prefixes)
}
