// Command ldp is a small command-line client for Linked Data Platform
// servers: fetch resources, list containers, upload, delete.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/ldp-go/ldp"
)

const toolVersion = "0.1.0"

var flagContentType string

var client = ldp.NewClient(ldp.WithAgent("ldp-cli/" + toolVersion))

var rootCmd = &cobra.Command{
	Use:   "ldp",
	Short: "Command-line client for LDP servers",
	Long: `ldp talks to Linked Data Platform servers over HTTP.

Examples:
  ldp get https://pod.example/docs/readme.ttl
  ldp ls https://pod.example/docs/
  ldp put https://pod.example/docs/note.ttl note.ttl
  ldp mkdir https://pod.example/docs/ reports
  ldp rm https://pod.example/docs/note.ttl`,
}

var getCmd = &cobra.Command{
	Use:   "get <url>",
	Short: "Fetch a resource and print its body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.Get(context.Background(), args[0])
		if err != nil {
			return err
		}
		if !resp.Exists() {
			return fmt.Errorf("%s: status %d", args[0], resp.Status())
		}
		fmt.Print(resp.Raw())
		return nil
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls <url>",
	Short: "List the children of a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folder, err := client.GetContainer(context.Background(), args[0])
		if err != nil {
			return err
		}
		uris := append([]string(nil), folder.ContentURIs()...)
		sort.Strings(uris)
		for _, uri := range uris {
			marker := "-"
			if _, ok := folder.Containers()[uri]; ok {
				marker = "d"
			}
			fmt.Printf("%s %s\n", marker, uri)
		}
		return nil
	},
}

var putCmd = &cobra.Command{
	Use:   "put <url> <file>",
	Short: "Upload a file to a resource URL",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		resp, err := client.Put(context.Background(), args[0], string(body), flagContentType)
		if err != nil {
			return err
		}
		if !resp.Exists() {
			return fmt.Errorf("%s: status %d", args[0], resp.Status())
		}
		fmt.Fprintf(os.Stderr, "created %s\n", resp.URL())
		return nil
	},
}

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <parent-url> <name>",
	Short: "Create a child container",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.CreateContainer(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		if !resp.Exists() {
			return fmt.Errorf("%s: status %d", args[0], resp.Status())
		}
		fmt.Fprintf(os.Stderr, "created %s\n", resp.URL())
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <url>",
	Short: "Delete a resource",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.Delete(context.Background(), args[0])
		if err != nil {
			return err
		}
		if !resp.Exists() {
			return fmt.Errorf("%s: status %d", args[0], resp.Status())
		}
		return nil
	},
}

var statCmd = &cobra.Command{
	Use:   "stat <url>",
	Short: "Probe a resource and print its metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.Head(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("url:          %s\n", resp.URL())
		fmt.Printf("status:       %d\n", resp.Status())
		fmt.Printf("content-type: %s\n", resp.ContentType())
		fmt.Printf("container:    %v\n", resp.IsContainer())
		if acl := resp.AclAbsoluteURL(); acl != "" {
			fmt.Printf("acl:          %s\n", acl)
		}
		if meta := resp.MetaAbsoluteURL(); meta != "" {
			fmt.Printf("meta:         %s\n", meta)
		}
		return nil
	},
}

func init() {
	putCmd.Flags().StringVarP(&flagContentType, "content-type", "t", ldp.TextTurtle, "Content type of the uploaded body")
	rootCmd.AddCommand(getCmd, lsCmd, putCmd, mkdirCmd, rmCmd, statCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
