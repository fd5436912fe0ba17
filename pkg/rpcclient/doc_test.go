package rpcclient_test

import (
	"context"
	"fmt"

	"github.com/nspcc-dev/near-go/pkg/rpcclient"
	"github.com/nspcc-dev/near-go/pkg/util"
)

func Example() {
	ctx := context.Background()
	c, err := rpcclient.New("https://rpc.mainnet.near.org", rpcclient.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer c.Close()

	st, err := c.GetStatus(ctx)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(st.ChainID, st.SyncInfo.LatestBlockHeight)

	acc, err := c.ViewAccount(ctx, "miraclx.near", util.FinalBlock())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(acc.Amount)
}

func ExampleCall() {
	ctx := context.Background()
	c, err := rpcclient.New("https://rpc.testnet.near.org", rpcclient.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer c.Close()

	// Catalog constructors build reusable method descriptors, Call executes
	// them against any client.
	m := rpcclient.BlockRequest(util.AtBlock(util.BlockIDFromHeight(17795474)))
	b, err := rpcclient.Call(ctx, c, m)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(b.Header.Hash)
}

func ExampleClient_WithAuth() {
	c, err := rpcclient.New("https://near-mainnet.api.example.com", rpcclient.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}
	ac := c.WithAuth(rpcclient.APIKey("164ff496-Example-Key"))

	if err := ac.Health(context.Background()); err != nil {
		fmt.Println(err)
	}
}
