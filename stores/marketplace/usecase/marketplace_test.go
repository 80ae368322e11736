package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/marketplace"
	mMarketplace "github.com/openmarket/goapi/domain/marketplace/mocks"
	mContract "github.com/openmarket/goapi/service/chain/contract/mocks"
	mPayout "github.com/openmarket/goapi/service/payout/mocks"
)

type testSuite struct {
	suite.Suite

	listingRepo  *mMarketplace.ListingRepo
	proceedsRepo *mMarketplace.ProceedsRepo
	activityRepo *mMarketplace.ActivityRepo
	erc721       *mContract.Erc721Contract
	payout       *mPayout.Client

	im marketplace.UseCase
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.listingRepo = &mMarketplace.ListingRepo{}
	s.proceedsRepo = &mMarketplace.ProceedsRepo{}
	s.activityRepo = &mMarketplace.ActivityRepo{}
	s.erc721 = &mContract.Erc721Contract{}
	s.payout = &mPayout.Client{}

	s.im = New(&MarketplaceUseCaseCfg{
		ListingRepo:  s.listingRepo,
		ProceedsRepo: s.proceedsRepo,
		ActivityRepo: s.activityRepo,
		Erc721:       s.erc721,
		Payout:       s.payout,
	})
}

func (s *testSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.proceedsRepo.AssertExpectations(s.T())
	s.activityRepo.AssertExpectations(s.T())
	s.erc721.AssertExpectations(s.T())
	s.payout.AssertExpectations(s.T())
}

var (
	seller   = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	buyer    = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	stranger = domain.Address("0x07fe9ffd85b54a3a18467d3b5e91a55ecc52a268")
	operator = domain.Address("0x1a01ecd2263a9d5b5967667e508ea22db478bc4b")

	listingId = marketplace.ListingId{
		ChainId:    1,
		Collection: "0xdcf0de6b17785a143d006e1515a6afd123cde8ba",
		TokenId:    "1",
	}
)

func mockListing(price string) *marketplace.Listing {
	now := time.Now().Add(-time.Hour)
	return &marketplace.Listing{
		ChainId:    listingId.ChainId,
		Collection: listingId.Collection,
		TokenId:    listingId.TokenId,
		Seller:     seller,
		Price:      price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *testSuite) mockOwnedAndApproved(owner domain.Address) {
	s.erc721.On("OwnerOf", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), big.NewInt(1)).Return(owner.ToLowerStr(), nil).Once()
	if owner.Equals(seller) {
		s.erc721.On("Operator", int32(1)).Return(operator.ToLowerStr(), nil).Once()
		s.erc721.On("GetApproved", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), big.NewInt(1)).Return(operator.ToLowerStr(), nil).Once()
	}
}

func (s *testSuite) TestListItem() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()
	s.mockOwnedAndApproved(seller)
	s.listingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.Seller == seller && l.Price == "10"
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *marketplace.Activity) bool {
		return a.Type == marketplace.ActivityTypeList && a.Price == "10"
	})).Return(nil).Once()

	listing, err := s.im.ListItem(_ctx, seller, listingId, decimal.NewFromInt(10))
	s.NoError(err)
	s.Equal(seller, listing.Seller)
	s.Equal("10", listing.Price)
}

func (s *testSuite) TestListItemInvalidPrice() {
	_ctx := ctx.Background()

	_, err := s.im.ListItem(_ctx, seller, listingId, decimal.Zero)
	s.ErrorIs(err, domain.ErrInvalidPrice)

	_, err = s.im.ListItem(_ctx, seller, listingId, decimal.NewFromInt(-1))
	s.ErrorIs(err, domain.ErrInvalidPrice)
}

func (s *testSuite) TestListItemAlreadyListedByOther() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()

	_, err := s.im.ListItem(_ctx, stranger, listingId, decimal.NewFromInt(20))
	s.ErrorIs(err, domain.ErrAlreadyListed)
}

func (s *testSuite) TestListItemRelistBySameSeller() {
	_ctx := ctx.Background()

	cur := mockListing("10")
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(cur, nil).Once()
	s.mockOwnedAndApproved(seller)
	s.listingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.Price == "20" && l.CreatedAt.Equal(cur.CreatedAt)
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	listing, err := s.im.ListItem(_ctx, seller, listingId, decimal.NewFromInt(20))
	s.NoError(err)
	s.Equal("20", listing.Price)
}

func (s *testSuite) TestListItemNotOwner() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()
	s.mockOwnedAndApproved(stranger)

	_, err := s.im.ListItem(_ctx, seller, listingId, decimal.NewFromInt(10))
	s.ErrorIs(err, domain.ErrNotOwner)
}

func (s *testSuite) TestListItemNotApproved() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()
	s.erc721.On("OwnerOf", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), big.NewInt(1)).Return(seller.ToLowerStr(), nil).Once()
	s.erc721.On("Operator", int32(1)).Return(operator.ToLowerStr(), nil).Once()
	s.erc721.On("GetApproved", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), big.NewInt(1)).Return(domain.EmptyAddress.ToLowerStr(), nil).Once()
	s.erc721.On("IsApprovedForAll", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), operator.ToLowerStr()).Return(false, nil).Once()

	_, err := s.im.ListItem(_ctx, seller, listingId, decimal.NewFromInt(10))
	s.ErrorIs(err, domain.ErrNotApproved)
}

func (s *testSuite) TestBuyItem() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(nil, domain.ErrNotFound).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Address == seller && p.Amount == "10"
	})).Return(nil).Once()
	s.erc721.On("TransferFrom", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), big.NewInt(1)).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *marketplace.Activity) bool {
		return a.Type == marketplace.ActivityTypeBuy && a.Buyer == buyer && a.Paid == "10"
	})).Return(nil).Once()

	s.NoError(s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(10)))
}

func (s *testSuite) TestBuyItemOverpaymentCreditedInFull() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	existing := &marketplace.Proceeds{ChainId: 1, Address: seller, Amount: "5"}
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(existing, nil).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "20"
	})).Return(nil).Once()
	s.erc721.On("TransferFrom", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), big.NewInt(1)).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	s.NoError(s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(15)))
}

func (s *testSuite) TestBuyItemNotListed() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()

	err := s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(10))
	s.ErrorIs(err, domain.ErrNotListed)
}

func (s *testSuite) TestBuyItemPriceNotMet() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()

	err := s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(9))
	s.ErrorIs(err, domain.ErrPriceNotMet)
}

func (s *testSuite) TestBuyItemTransferFailureRollsBack() {
	_ctx := ctx.Background()

	listing := mockListing("7")
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(listing, nil).Once()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	existing := &marketplace.Proceeds{ChainId: 1, Address: seller, Amount: "10"}
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(existing, nil).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "17"
	})).Return(nil).Once()
	s.erc721.On("TransferFrom", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), big.NewInt(1)).Return(errors.New("revert")).Once()
	// compensation restores the previous balance and the listing
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "10"
	})).Return(nil).Once()
	s.listingRepo.On("Upsert", mock.Anything, listing).Return(nil).Once()

	err := s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(7))
	s.ErrorIs(err, domain.ErrTransferFailed)
}

// a read arriving while a purchase is mid-flight must wait it out, so it
// never sees the cleared listing of a buy that ends up rolled back
func (s *testSuite) TestGetListingDuringFailedBuy() {
	_ctx := ctx.Background()

	listing := mockListing("10")
	transferStarted := make(chan struct{})
	releaseTransfer := make(chan struct{})

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(listing, nil).Twice()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(nil, domain.ErrNotFound).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
	s.erc721.On("TransferFrom", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), big.NewInt(1)).Run(func(args mock.Arguments) {
		close(transferStarted)
		<-releaseTransfer
	}).Return(errors.New("revert")).Once()
	s.listingRepo.On("Upsert", mock.Anything, listing).Return(nil).Once()

	buyDone := make(chan error, 1)
	go func() {
		buyDone <- s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(10))
	}()

	// the listing is already removed here, but the buy still holds the
	// ledger, so the read below cannot start until the rollback is in place
	<-transferStarted

	type readResult struct {
		listing *marketplace.Listing
		err     error
	}
	readDone := make(chan readResult, 1)
	go func() {
		l, err := s.im.GetListing(_ctx, listingId)
		readDone <- readResult{l, err}
	}()

	close(releaseTransfer)
	s.ErrorIs(<-buyDone, domain.ErrTransferFailed)

	res := <-readDone
	s.NoError(res.err)
	s.Equal(seller, res.listing.Seller)
}

func (s *testSuite) TestCancelListing() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *marketplace.Activity) bool {
		return a.Type == marketplace.ActivityTypeCancel
	})).Return(nil).Once()

	s.NoError(s.im.CancelListing(_ctx, seller, listingId))
}

func (s *testSuite) TestCancelListingNotOwner() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()

	err := s.im.CancelListing(_ctx, stranger, listingId)
	s.ErrorIs(err, domain.ErrNotOwner)
}

func (s *testSuite) TestCancelListingNotListed() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()

	err := s.im.CancelListing(_ctx, seller, listingId)
	s.ErrorIs(err, domain.ErrNotListed)
}

func (s *testSuite) TestUpdateListing() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()
	s.listingRepo.On("Patch", mock.Anything, listingId, mock.MatchedBy(func(p marketplace.ListingPatchable) bool {
		return p.Price != nil && *p.Price == "25"
	})).Return(nil).Once()
	// re-pricing reuses the listed notification so feed consumers watching
	// for listings see the new terms
	s.activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *marketplace.Activity) bool {
		return a.Type == marketplace.ActivityTypeList && a.Price == "25"
	})).Return(nil).Once()

	listing, err := s.im.UpdateListing(_ctx, seller, listingId, decimal.NewFromInt(25))
	s.NoError(err)
	s.Equal("25", listing.Price)
	s.Equal(seller, listing.Seller)
}

func (s *testSuite) TestUpdateListingInvalidPrice() {
	_ctx := ctx.Background()

	_, err := s.im.UpdateListing(_ctx, seller, listingId, decimal.Zero)
	s.ErrorIs(err, domain.ErrInvalidPrice)
}

func (s *testSuite) TestUpdateListingNotOwner() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()

	_, err := s.im.UpdateListing(_ctx, stranger, listingId, decimal.NewFromInt(25))
	s.ErrorIs(err, domain.ErrNotOwner)
}

func (s *testSuite) TestWithdrawProceeds() {
	_ctx := ctx.Background()

	proceeds := &marketplace.Proceeds{ChainId: 1, Address: seller, Amount: "42"}
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(proceeds, nil).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "0"
	})).Return(nil).Once()
	s.payout.On("Transfer", mock.Anything, domain.ChainId(1), seller, decimal.NewFromInt(42)).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *marketplace.Activity) bool {
		return a.Type == marketplace.ActivityTypeWithdraw && a.Paid == "42"
	})).Return(nil).Once()

	amount, err := s.im.WithdrawProceeds(_ctx, seller, 1)
	s.NoError(err)
	s.True(amount.Equal(decimal.NewFromInt(42)))
}

func (s *testSuite) TestWithdrawNoProceeds() {
	_ctx := ctx.Background()

	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.WithdrawProceeds(_ctx, seller, 1)
	s.ErrorIs(err, domain.ErrNoProceeds)
}

func (s *testSuite) TestWithdrawZeroedBalance() {
	_ctx := ctx.Background()

	proceeds := &marketplace.Proceeds{ChainId: 1, Address: seller, Amount: "0"}
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(proceeds, nil).Once()

	_, err := s.im.WithdrawProceeds(_ctx, seller, 1)
	s.ErrorIs(err, domain.ErrNoProceeds)
}

func (s *testSuite) TestWithdrawTransferFailureRollsBack() {
	_ctx := ctx.Background()

	proceeds := &marketplace.Proceeds{ChainId: 1, Address: seller, Amount: "42"}
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(proceeds, nil).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "0"
	})).Return(nil).Once()
	s.payout.On("Transfer", mock.Anything, domain.ChainId(1), seller, decimal.NewFromInt(42)).Return(errors.New("treasury down")).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "42"
	})).Return(nil).Once()

	_, err := s.im.WithdrawProceeds(_ctx, seller, 1)
	s.ErrorIs(err, domain.ErrTransferFailed)
}

func (s *testSuite) TestGetListingNotListed() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.GetListing(_ctx, listingId)
	s.ErrorIs(err, domain.ErrNotListed)
}

func (s *testSuite) TestGetProceedsDefaultsToZero() {
	_ctx := ctx.Background()

	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(nil, domain.ErrNotFound).Once()

	amount, err := s.im.GetProceeds(_ctx, marketplace.ProceedsId{ChainId: 1, Address: seller})
	s.NoError(err)
	s.True(amount.IsZero())
}

// relisting after a completed purchase starts a fresh listing, nothing of the
// old one survives the buy
func (s *testSuite) TestRelistAfterPurchase() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(mockListing("10"), nil).Once()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(nil, domain.ErrNotFound).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
	s.erc721.On("TransferFrom", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), big.NewInt(1)).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Twice()

	s.NoError(s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(10)))

	// the buyer lists the token they now own
	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()
	s.erc721.On("OwnerOf", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), big.NewInt(1)).Return(buyer.ToLowerStr(), nil).Once()
	s.erc721.On("Operator", int32(1)).Return(operator.ToLowerStr(), nil).Once()
	s.erc721.On("GetApproved", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), big.NewInt(1)).Return(operator.ToLowerStr(), nil).Once()
	s.listingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.Seller == buyer && l.Price == "12"
	})).Return(nil).Once()

	listing, err := s.im.ListItem(_ctx, buyer, listingId, decimal.NewFromInt(12))
	s.NoError(err)
	s.Equal(buyer, listing.Seller)
}

// full happy path: the seller lists, the buyer pays, the seller withdraws
// exactly what the sale credited
func (s *testSuite) TestListBuyWithdrawFlow() {
	_ctx := ctx.Background()

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(nil, domain.ErrNotFound).Once()
	s.mockOwnedAndApproved(seller)
	s.listingRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(l *marketplace.Listing) bool {
		return l.Seller == seller && l.Price == "10"
	})).Return(nil).Once()
	s.activityRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Times(3)

	listing, err := s.im.ListItem(_ctx, seller, listingId, decimal.NewFromInt(10))
	s.NoError(err)

	s.listingRepo.On("FindOne", mock.Anything, listingId).Return(listing, nil).Once()
	s.listingRepo.On("Remove", mock.Anything, listingId).Return(nil).Once()
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(nil, domain.ErrNotFound).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "10"
	})).Return(nil).Once()
	s.erc721.On("TransferFrom", mock.Anything, int32(1), listingId.Collection.ToLowerStr(), seller.ToLowerStr(), buyer.ToLowerStr(), big.NewInt(1)).Return(nil).Once()

	s.NoError(s.im.BuyItem(_ctx, buyer, listingId, decimal.NewFromInt(10)))

	credited := &marketplace.Proceeds{ChainId: 1, Address: seller, Amount: "10"}
	s.proceedsRepo.On("FindOne", mock.Anything, marketplace.ProceedsId{ChainId: 1, Address: seller}).Return(credited, nil).Once()
	s.proceedsRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *marketplace.Proceeds) bool {
		return p.Amount == "0"
	})).Return(nil).Once()
	s.payout.On("Transfer", mock.Anything, domain.ChainId(1), seller, decimal.NewFromInt(10)).Return(nil).Once()

	amount, err := s.im.WithdrawProceeds(_ctx, seller, 1)
	s.NoError(err)
	s.True(amount.Equal(decimal.NewFromInt(10)))
}
