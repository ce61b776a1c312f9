package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/JichouP/csvcat/internal/render"
	"github.com/JichouP/csvcat/pkg/csvcat"
)

// Flag values offered by shell completion.
var (
	matchPolicies = []string{string(csvcat.MatchSuffix), string(csvcat.MatchContains)}

	duplicatePolicies = []string{string(csvcat.DuplicatesKeep), string(csvcat.DuplicatesMerge)}

	malformedPolicies = []string{string(csvcat.MalformedAbort), string(csvcat.MalformedSkip)}
)

// completeFrom returns a completion function over a fixed set of values.
func completeFrom(values []string) cobra.CompletionFunc {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var matches []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				matches = append(matches, v)
			}
		}
		return matches, cobra.ShellCompDirectiveNoFileComp
	}
}

var (
	completeFormats           = completeFrom(render.Formats)
	completeMatchPolicies     = completeFrom(matchPolicies)
	completeDuplicatePolicies = completeFrom(duplicatePolicies)
	completeMalformedPolicies = completeFrom(malformedPolicies)
)

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

// completeDataFile completes the <file> argument of the column command and
// nothing after it.
func completeDataFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}
