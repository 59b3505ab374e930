/*
Package cli provides command-line interface utilities for topofix.

The cli package includes output formatters, the process exit-code
taxonomy, and signal handling used by the topofix command.

Output Formatting:

The cli package supports text and JSON output for displaying command
results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

Exit Codes:

Command RunE bodies classify failures by wrapping them:

	data, err := os.ReadFile(path)
	if err != nil {
		return cli.NewInputError(err)
	}

Execute resolves the process exit code with cli.ExitCode(err):
0 success, 1 generic failure, 2 invalid usage, 3 unreadable input,
4 output write failure.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
